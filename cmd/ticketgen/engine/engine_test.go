package engine

import (
	"testing"
	"time"

	"laneboard/internal/tracker"
)

func TestGenerate_Shape(t *testing.T) {
	now := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
	tickets, members := Generate(GeneratorConfig{Count: 24, Members: 4, Now: now})

	if len(members) != 4 {
		t.Fatalf("got %d members, want 4", len(members))
	}
	if len(tickets) != 24 {
		t.Fatalf("got %d tickets, want 24", len(tickets))
	}

	// At most one in_process ticket per member, each with a live countdown.
	activePer := make(map[string]int)
	for _, dto := range tickets {
		if dto.Status != string(tracker.StatusInProcess) {
			continue
		}
		activePer[dto.AssignedInfo.TeamMembers[0]]++
		if dto.Meta.StartedAt == "" || dto.Meta.RemainingSeconds == nil {
			t.Errorf("in_process ticket %s missing startedAt/remainingSeconds", dto.JobID)
		}
	}
	for name, n := range activePer {
		if n > 1 {
			t.Errorf("member %s has %d in_process tickets, want at most 1", name, n)
		}
	}
}

func TestGenerate_MapsCleanly(t *testing.T) {
	tickets, _ := Generate(GeneratorConfig{Count: 10, Members: 3})

	mapped := tracker.MapTickets(&tracker.TicketListResponse{Total: len(tickets), Tickets: tickets})
	if len(mapped) != len(tickets) {
		t.Fatalf("mapper dropped entries: %d of %d survived", len(mapped), len(tickets))
	}
	for _, ticket := range mapped {
		if ticket.CreatedAt.IsZero() {
			t.Errorf("ticket %s mapped with zero createdAt", ticket.JobID)
		}
		if len(ticket.Assignees()) == 0 {
			t.Errorf("ticket %s has no assignees", ticket.JobID)
		}
	}
}
