package inquiry

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/example/inquiry-service/internal/attest"
)

// MinConfidence is the lowest attestation score accepted, inclusive.
const MinConfidence = 0.5

// MinLeadDays is how many calendar days ahead an event date must be.
const MinLeadDays = 2

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries a user-safe reason for rejecting an inquiry.
// It never reveals which attestation sub-check failed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	errTokenRequired = &ValidationError{Reason: "reCAPTCHA verification required"}
	errVerifyFailed  = &ValidationError{Reason: "reCAPTCHA verification failed. Please try again."}
	errMissingField  = &ValidationError{Reason: "All required fields must be filled"}
	errInvalidEmail  = &ValidationError{Reason: "Invalid email format"}
	errDateTooSoon   = &ValidationError{Reason: "Event date must be at least 2 days in advance"}
)

// Validator decides whether an inquiry may proceed to notification. Checks
// run in a fixed order and stop at the first failure: attestation, required
// fields, email shape, lead time.
type Validator struct {
	Verifier attest.Verifier

	// Now is overridable for lead-time tests; defaults to time.Now.
	Now func() time.Time
}

func (v *Validator) Validate(ctx context.Context, inq Inquiry) error {
	if err := v.verifyAttestation(ctx, inq.RecaptchaToken); err != nil {
		return err
	}
	if err := checkRequiredFields(inq); err != nil {
		return err
	}
	if !emailShape.MatchString(inq.Email) {
		return errInvalidEmail
	}
	return v.checkLeadTime(inq)
}

// verifyAttestation fails closed: a missing token, a verifier error, a
// non-success verdict, and a low score all reject the inquiry.
func (v *Validator) verifyAttestation(ctx context.Context, token string) error {
	if token == "" {
		return errTokenRequired
	}
	result, err := v.Verifier.Verify(ctx, token)
	if err != nil {
		return errVerifyFailed
	}
	if !result.Success || result.Score < MinConfidence {
		return errVerifyFailed
	}
	return nil
}

func checkRequiredFields(inq Inquiry) error {
	required := []string{
		inq.FullName,
		inq.Email,
		inq.ContactNumber,
		inq.EventType,
		inq.EventDate,
		inq.Venue,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return errMissingField
		}
	}
	return nil
}

func (v *Validator) checkLeadTime(inq Inquiry) error {
	eventDate, err := inq.ParsedEventDate()
	if err != nil {
		return errDateTooSoon
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	today := now()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	earliest := midnight.AddDate(0, 0, MinLeadDays)

	// A date exactly MinLeadDays out is acceptable.
	if eventDate.Before(earliest) {
		return errDateTooSoon
	}
	return nil
}
