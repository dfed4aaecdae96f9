package inquiry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/inquiry-service/internal/mailer"
)

// Leg identifies which notification send failed.
type Leg string

const (
	LegOwner  Leg = "owner"
	LegClient Leg = "client"
)

// DeliveryError is a terminal transport failure on one notification leg.
type DeliveryError struct {
	Leg Leg
	Err error
}

func (e *DeliveryError) Error() string {
	switch e.Leg {
	case LegClient:
		return fmt.Sprintf("failed to send client confirmation: %v", e.Err)
	default:
		return fmt.Sprintf("failed to send inquiry notification: %v", e.Err)
	}
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Dispatcher renders and sends the two notification documents for a
// validated inquiry.
//
// The sends are sequential and dependent: the owner notice goes first, and a
// failure there aborts the request before the client leg is attempted. A
// client-leg failure is surfaced as an error even though the owner has
// already been notified; the returned Outcome records that partial progress.
type Dispatcher struct {
	Transport     mailer.Transport
	FromEmail     string
	FromName      string
	OwnerEmail    string
	BusinessPhone string

	// Logo is attached inline to both documents when present. Absence is
	// not an error; the documents go out without it.
	Logo *mailer.Attachment

	Logger zerolog.Logger
}

// Dispatch sends the owner notice then the client notice. No retries: every
// failure is terminal for this request.
func (d *Dispatcher) Dispatch(ctx context.Context, inq Inquiry) (Outcome, error) {
	outcome := Outcome{}

	ownerHTML, err := RenderOwnerNotice(inq, d.BusinessPhone)
	if err != nil {
		return outcome, &DeliveryError{Leg: LegOwner, Err: err}
	}
	ownerMsg := mailer.Message{
		From:        d.FromEmail,
		FromName:    d.FromName,
		To:          d.OwnerEmail,
		ReplyTo:     inq.Email,
		Subject:     fmt.Sprintf("New Inquiry: %s - %s", inq.EventType, inq.FullName),
		HTML:        ownerHTML,
		Attachments: d.attachments(),
	}
	if err := d.Transport.Send(ctx, ownerMsg); err != nil {
		d.Logger.Error().Err(err).Str("leg", string(LegOwner)).Msg("notification send failed")
		return outcome, &DeliveryError{Leg: LegOwner, Err: err}
	}
	outcome.OwnerNotified = true
	d.Logger.Info().Str("to", d.OwnerEmail).Msg("owner notice sent")

	clientHTML, err := RenderClientNotice(inq, d.BusinessPhone)
	if err != nil {
		return outcome, &DeliveryError{Leg: LegClient, Err: err}
	}
	clientMsg := mailer.Message{
		From:        d.FromEmail,
		FromName:    d.FromName,
		To:          inq.Email,
		Subject:     "Thank You for Your Inquiry - Memoriza Events Management",
		HTML:        clientHTML,
		Attachments: d.attachments(),
	}
	if err := d.Transport.Send(ctx, clientMsg); err != nil {
		d.Logger.Error().Err(err).Str("leg", string(LegClient)).Msg("notification send failed")
		return outcome, &DeliveryError{Leg: LegClient, Err: err}
	}
	outcome.ClientNotified = true
	d.Logger.Info().Str("to", inq.Email).Msg("client confirmation sent")

	return outcome, nil
}

func (d *Dispatcher) attachments() []mailer.Attachment {
	if d.Logo == nil {
		return nil
	}
	return []mailer.Attachment{*d.Logo}
}
