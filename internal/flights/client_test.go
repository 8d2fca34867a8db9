package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch_MockQuotes(t *testing.T) {
	c := NewClient("http://unused", nil)

	got := c.Fetch(context.Background(), "goa", "")
	if len(got) != 2 {
		t.Fatalf("got %d quotes, want 2", len(got))
	}
	for _, line := range got {
		if !strings.Contains(line, "GOA") {
			t.Errorf("quote %q missing uppercased destination", line)
		}
		if !strings.Contains(line, "(Mock)") {
			t.Errorf("quote %q missing mock marker", line)
		}
	}
	if got[0] != "DEL → GOA : ₹4,500 (Mock)" {
		t.Errorf("first quote = %q", got[0])
	}
	if got[1] != "BOM → GOA : ₹5,200 (Mock)" {
		t.Errorf("second quote = %q", got[1])
	}

	// Deterministic: same destination, same quotes.
	again := c.Fetch(context.Background(), "goa", "")
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("mock quotes not deterministic: %q vs %q", got[i], again[i])
		}
	}
}

func TestFetch_DestinationCodeMapping(t *testing.T) {
	tests := []struct {
		destination string
		wantCode    string
	}{
		{"goa", "GOI"},
		{"Goa", "GOI"},
		{"manali", "KUU"},
		{"paris", "KUU"},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			var gotCode string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCode = r.URL.Query().Get("destinationLocationCode")
				_, _ = w.Write([]byte(`{"data":[]}`))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			c.Fetch(context.Background(), tt.destination, "test-key")
			if gotCode != tt.wantCode {
				t.Fatalf("destinationLocationCode = %q, want %q", gotCode, tt.wantCode)
			}
		})
	}
}

func TestFetch_QueryAndQuoteFormatting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("originLocationCode"); got != "DEL" {
			t.Errorf("originLocationCode = %q, want DEL", got)
		}
		if got := q.Get("adults"); got != "1" {
			t.Errorf("adults = %q, want 1", got)
		}
		if got := q.Get("max"); got != "2" {
			t.Errorf("max = %q, want 2", got)
		}
		if got := q.Get("departureDate"); got != "2026-09-05" {
			t.Errorf("departureDate = %q, want 2026-09-05", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"price":{"total":"5634.00"},"itineraries":[{"segments":[
				{"departure":{"iataCode":"DEL"},"arrival":{"iataCode":"GOI"}}]}]},
			{"price":{"total":"6120.50"},"itineraries":[{"segments":[
				{"departure":{"iataCode":"DEL"},"arrival":{"iataCode":"GOI"}}]}]}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	c.now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }

	got := c.Fetch(context.Background(), "goa", "test-key")
	want := []string{
		"DEL → GOI : ₹5634.00",
		"DEL → GOI : ₹6120.50",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFetch_NoOffers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	got := c.Fetch(context.Background(), "manali", "test-key")
	if len(got) != 1 || got[0] != "No flights found." {
		t.Fatalf("Fetch = %v, want single no-flights line", got)
	}
}

func TestFetch_DegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	got := c.Fetch(context.Background(), "goa", "bad-key")
	if len(got) != 1 || !strings.HasPrefix(got[0], "Flight API error:") {
		t.Fatalf("Fetch = %v, want single degraded error line", got)
	}
}
