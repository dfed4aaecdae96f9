package mailer

import (
	"context"
	"encoding/base64"
	"os"
)

// Attachment is an inline asset referenced from the HTML body by content id.
type Attachment struct {
	Filename  string `json:"filename"`
	ContentID string `json:"content_id"`
	Content   string `json:"content"` // base64
}

type Message struct {
	From        string       `json:"from"`
	FromName    string       `json:"from_name,omitempty"`
	To          string       `json:"to"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Transport submits a rendered message to the outbound relay. Implementations
// must be safe for concurrent use.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// LoadInlineAttachment reads an asset for inline embedding. A missing or
// unreadable file is not an error: sends proceed without the attachment.
func LoadInlineAttachment(path, cid string) *Attachment {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return &Attachment{
		Filename:  filenameOf(path),
		ContentID: cid,
		Content:   base64.StdEncoding.EncodeToString(data),
	}
}

func filenameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
