package tracker

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL string) Client {
	return NewClient(Config{
		BaseURL:      baseURL,
		Token:        "test-token",
		RequestDelay: time.Millisecond,
	})
}

func TestListTickets(t *testing.T) {
	var gotAuth, gotStatus string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tickets" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotStatus = r.URL.Query().Get("status")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 1,
			"tickets": [{
				"id": "abc",
				"jobId": "JOB-0001",
				"status": "assigned",
				"assignedInfo": {"teamMembers": ["Alice"]},
				"meta": {"teamEst": "1h 00m"},
				"createdAt": "2026-03-10T08:00:00Z"
			}]
		}`))
	}))
	defer server.Close()

	tickets, err := newTestClient(server.URL).ListTickets([]Status{StatusAssigned, StatusInProcess})
	if err != nil {
		t.Fatalf("ListTickets() error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotStatus != "assigned,in_process" {
		t.Errorf("status filter = %q, want comma-joined list", gotStatus)
	}
	if len(tickets) != 1 || tickets[0].JobID != "JOB-0001" {
		t.Errorf("tickets = %+v", tickets)
	}
}

func TestListTickets_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantPart string
	}{
		{"Unauthorized", http.StatusUnauthorized, "authentication failed"},
		{"Forbidden", http.StatusForbidden, "authentication failed"},
		{"RateLimited", http.StatusTooManyRequests, "rate limit"},
		{"ServerError", http.StatusInternalServerError, "status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).ListTickets(nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantPart)
			}
		})
	}
}

func TestListTeamMembers_Cached(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"teamMembers": [{"name": "Alice", "startTime": "09:00"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for i := 0; i < 3; i++ {
		members, err := client.ListTeamMembers()
		if err != nil {
			t.Fatalf("ListTeamMembers() error: %v", err)
		}
		if len(members) != 1 || members[0].Name != "Alice" {
			t.Fatalf("members = %+v", members)
		}
	}

	// The roster changes rarely; repeat calls within the TTL hit the cache.
	if hits != 1 {
		t.Errorf("upstream hit %d times, want 1 (cached)", hits)
	}
}
