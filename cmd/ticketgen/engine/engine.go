package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"laneboard/internal/tracker"

	"github.com/google/uuid"
)

// GeneratorConfig controls the shape of the fabricated ticket population.
type GeneratorConfig struct {
	Count   int
	Members int
	Now     time.Time
}

var firstNames = []string{
	"Alice", "Priya", "Marco", "Yuki", "Dana", "Tomas", "Lena", "Omar",
	"Ingrid", "Ravi", "Sofia", "Chen",
}

var estimates = []string{
	"1h 00m", "2h 30m", "0h 45m", "3h 00m", "4h 15m", "1:30", "2",
}

// Generate fabricates a roster and a ticket population shaped like a
// real mid-shift snapshot: each member gets at most one in_process
// ticket with a live remaining countdown, the rest queue as assigned
// or paused work.
func Generate(cfg GeneratorConfig) ([]tracker.TicketDTO, []tracker.TeamMemberDTO) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Members <= 0 {
		cfg.Members = 4
	}
	if cfg.Members > len(firstNames) {
		cfg.Members = len(firstNames)
	}

	members := make([]tracker.TeamMemberDTO, 0, cfg.Members)
	for i := 0; i < cfg.Members; i++ {
		start := "08:00"
		if i%3 == 1 {
			start = "09:00"
		}
		members = append(members, tracker.TeamMemberDTO{
			Name:      firstNames[i],
			StartTime: start,
		})
	}

	activeGiven := make(map[string]bool)
	tickets := make([]tracker.TicketDTO, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		member := members[i%len(members)].Name
		created := cfg.Now.Add(-time.Duration(1+rand.Intn(8*60)) * time.Minute)

		dto := tracker.TicketDTO{
			ID:    uuid.NewString(),
			JobID: fmt.Sprintf("JOB-%04d", i+1),
			AssignedInfo: tracker.AssignedInfoDTO{
				Owner:       member,
				TeamMembers: []string{member},
			},
			Meta: tracker.MetaDTO{
				TeamEst: estimates[rand.Intn(len(estimates))],
			},
			CreatedAt: created.Format(time.RFC3339),
		}

		// Occasionally share a ticket across two people to exercise the
		// per-assignee split.
		if i%7 == 3 && len(members) > 1 {
			other := members[(i+1)%len(members)].Name
			dto.AssignedInfo.TeamMembers = append(dto.AssignedInfo.TeamMembers, other)
		}

		switch {
		case !activeGiven[member]:
			activeGiven[member] = true
			dto.Status = string(tracker.StatusInProcess)
			started := cfg.Now.Add(-time.Duration(10+rand.Intn(50)) * time.Minute)
			remaining := int64(600 + rand.Intn(5400))
			original := remaining + int64(rand.Intn(1800))
			dto.Meta.StartedAt = started.Format(time.RFC3339)
			dto.Meta.RemainingSeconds = &remaining
			dto.Meta.OriginalEstSeconds = &original
		case i%5 == 4:
			dto.Status = string(tracker.StatusPaused)
			paused := cfg.Now.Add(-time.Duration(rand.Intn(120)) * time.Minute)
			remaining := int64(300 + rand.Intn(3600))
			dto.Meta.PausedAt = paused.Format(time.RFC3339)
			dto.Meta.RemainingSeconds = &remaining
		default:
			dto.Status = string(tracker.StatusAssigned)
		}

		tickets = append(tickets, dto)
	}

	return tickets, members
}

// Save writes the generated snapshot as the tracker wire shapes, so the
// files can be replayed directly against the client's decoder.
func Save(outDir string, tickets []tracker.TicketDTO, members []tracker.TeamMemberDTO) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	ticketsDoc := tracker.TicketListResponse{Total: len(tickets), Tickets: tickets}
	if err := writeJSON(filepath.Join(outDir, "tickets.json"), ticketsDoc); err != nil {
		return err
	}

	membersDoc := tracker.TeamMemberListResponse{TeamMembers: members}
	return writeJSON(filepath.Join(outDir, "team_members.json"), membersDoc)
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
