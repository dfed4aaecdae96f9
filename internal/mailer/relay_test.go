package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRelaySend(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mail/send" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer key-1" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	transport := &RelayTransport{Endpoint: srv.URL, APIKey: "key-1", Client: srv.Client()}
	msg := Message{
		From:    "inquiries@example.com",
		To:      "owner@example.com",
		ReplyTo: "client@example.com",
		Subject: "New Inquiry",
		HTML:    "<p>hello</p>",
	}
	if err := transport.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.To != "owner@example.com" || got.ReplyTo != "client@example.com" {
		t.Fatalf("unexpected message relayed: %+v", got)
	}
}

func TestRelaySendSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	transport := &RelayTransport{Endpoint: srv.URL, APIKey: "bad", Client: srv.Client()}
	err := transport.Send(context.Background(), Message{To: "owner@example.com"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("provider detail missing from error: %v", err)
	}
}

func TestLoadInlineAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	att := LoadInlineAttachment(path, "logo")
	if att == nil {
		t.Fatal("expected attachment")
	}
	if att.Filename != "logo.png" || att.ContentID != "logo" || att.Content == "" {
		t.Fatalf("unexpected attachment: %+v", att)
	}

	if att := LoadInlineAttachment(filepath.Join(dir, "missing.png"), "logo"); att != nil {
		t.Fatalf("expected nil for missing asset, got %+v", att)
	}
}
