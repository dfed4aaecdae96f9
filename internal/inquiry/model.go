package inquiry

import "time"

// Inquiry is a prospective client's event-booking request. It lives for one
// request only: validated, dispatched, discarded.
type Inquiry struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contactNumber"`
	EventType      string `json:"eventType"`
	EventDate      string `json:"eventDate"`
	Venue          string `json:"venue"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Outcome reports each notification leg independently.
type Outcome struct {
	OwnerNotified  bool `json:"owner"`
	ClientNotified bool `json:"client"`
}

// ParsedEventDate resolves the submitted date string. Both plain dates and
// full timestamps are accepted; the calendar day is what matters.
func (i Inquiry) ParsedEventDate() (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", i.EventDate, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, i.EventDate)
}
