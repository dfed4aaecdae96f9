package inquiry

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/inquiry-service/internal/attest"
)

func newTestServer(t *testing.T, verifier attest.Verifier, transport *fakeTransport) *httptest.Server {
	t.Helper()
	validator := &Validator{Verifier: verifier, Now: fixedNow}
	h := NewHandler(validator, newDispatcher(transport), zerolog.Nop())
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postInquiry(t *testing.T, srv *httptest.Server, inq Inquiry) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(inq)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(srv.URL+"/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestSubmitSuccess(t *testing.T) {
	transport := &fakeTransport{}
	srv := newTestServer(t, &stubVerifier{result: attest.Result{Success: true, Score: 0.9}}, transport)

	inq := validInquiry()
	inq.EventDate = fixedNow().AddDate(0, 0, 30).Format("2006-01-02")

	resp, body := postInquiry(t, srv, inq)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200: %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["message"] != "Inquiry submitted successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	sent, ok := body["emailsSent"].(map[string]any)
	if !ok || sent["owner"] != true || sent["client"] != true {
		t.Fatalf("unexpected emailsSent: %v", body["emailsSent"])
	}
	if len(transport.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(transport.sent))
	}
}

func TestSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		verifier attest.Verifier
		mutate   func(*Inquiry)
		wantErr  string
	}{
		{
			name:     "missing token",
			verifier: &stubVerifier{result: attest.Result{Success: true, Score: 0.9}},
			mutate:   func(i *Inquiry) { i.RecaptchaToken = "" },
			wantErr:  "reCAPTCHA verification required",
		},
		{
			name:     "low confidence",
			verifier: &stubVerifier{result: attest.Result{Success: true, Score: 0.49}},
			mutate:   func(i *Inquiry) {},
			wantErr:  "reCAPTCHA verification failed. Please try again.",
		},
		{
			name:     "missing venue",
			verifier: &stubVerifier{result: attest.Result{Success: true, Score: 0.9}},
			mutate:   func(i *Inquiry) { i.Venue = "" },
			wantErr:  "All required fields must be filled",
		},
		{
			name:     "bad email",
			verifier: &stubVerifier{result: attest.Result{Success: true, Score: 0.9}},
			mutate:   func(i *Inquiry) { i.Email = "not-an-email" },
			wantErr:  "Invalid email format",
		},
		{
			name:     "event too soon",
			verifier: &stubVerifier{result: attest.Result{Success: true, Score: 0.9}},
			mutate:   func(i *Inquiry) { i.EventDate = fixedNow().AddDate(0, 0, 1).Format("2006-01-02") },
			wantErr:  "Event date must be at least 2 days in advance",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := &fakeTransport{}
			srv := newTestServer(t, tc.verifier, transport)

			inq := validInquiry()
			tc.mutate(&inq)

			resp, body := postInquiry(t, srv, inq)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status %d, want 400: %v", resp.StatusCode, body)
			}
			if body["error"] != tc.wantErr {
				t.Fatalf("got error %q, want %q", body["error"], tc.wantErr)
			}
			if len(transport.sent) != 0 {
				t.Fatalf("no emails should be sent on rejection, got %d", len(transport.sent))
			}
		})
	}
}

func TestSubmitOwnerSendFailure(t *testing.T) {
	transport := &fakeTransport{failFor: map[string]error{
		"owner@memoriza-events.com": errRelayDown,
	}}
	srv := newTestServer(t, &stubVerifier{result: attest.Result{Success: true, Score: 0.9}}, transport)

	resp, body := postInquiry(t, srv, validInquiry())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500: %v", resp.StatusCode, body)
	}
	details, _ := body["details"].(string)
	if !strings.Contains(details, "failed to send inquiry notification") {
		t.Fatalf("unexpected details: %q", details)
	}
	if len(transport.sent) != 0 {
		t.Fatalf("client leg attempted after owner failure")
	}
}

func TestSubmitClientSendFailure(t *testing.T) {
	transport := &fakeTransport{failFor: map[string]error{
		"ana@example.com": errRelayDown,
	}}
	srv := newTestServer(t, &stubVerifier{result: attest.Result{Success: true, Score: 0.9}}, transport)

	resp, body := postInquiry(t, srv, validInquiry())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500: %v", resp.StatusCode, body)
	}
	details, _ := body["details"].(string)
	if !strings.Contains(details, "failed to send client confirmation") {
		t.Fatalf("unexpected details: %q", details)
	}
}

func TestSubmitMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &stubVerifier{result: attest.Result{Success: true, Score: 0.9}}, &fakeTransport{})

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "Method not allowed" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSubmitMalformedBody(t *testing.T) {
	srv := newTestServer(t, &stubVerifier{result: attest.Result{Success: true, Score: 0.9}}, &fakeTransport{})

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

var errRelayDown = errors.New("relay rejected send: 503 Service Unavailable")
