package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSearch(t *testing.T) {
	var gotPath, gotAgent string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"display_name":"Manila"}]`))
	}))
	defer upstream.Close()

	c := &Client{BaseURL: upstream.URL, UserAgent: "Example Events Website (inquiries@example.com)", Client: upstream.Client()}
	raw, err := c.Search(context.Background(), "Manila")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `[{"display_name":"Manila"}]` {
		t.Fatalf("unexpected body: %s", raw)
	}
	if gotPath != "/search" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotAgent != "Example Events Website (inquiries@example.com)" {
		t.Fatalf("upstream not given the descriptive user agent, got %q", gotAgent)
	}
	for key, want := range map[string]string{"format": "json", "q": "Manila", "limit": "5", "addressdetails": "1"} {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != want {
			t.Fatalf("query param %s=%v, want %s", key, gotQuery[key], want)
		}
	}
}

func TestClientReverse(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Tagaytay"}`))
	}))
	defer upstream.Close()

	c := &Client{BaseURL: upstream.URL, UserAgent: "ua", Client: upstream.Client()}
	raw, err := c.Reverse(context.Background(), 14.1153, 120.9621)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"display_name":"Tagaytay"}` {
		t.Fatalf("unexpected body: %s", raw)
	}
	if gotPath != "/reverse" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotQuery["lat"][0] != "14.1153" || gotQuery["lon"][0] != "120.9621" {
		t.Fatalf("unexpected coordinates: %v", gotQuery)
	}
}

func TestClientUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	c := &Client{BaseURL: upstream.URL, UserAgent: "ua", Client: upstream.Client()}
	if _, err := c.Search(context.Background(), "Manila"); err == nil {
		t.Fatal("expected error")
	}
}
