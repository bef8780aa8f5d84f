package schedule

import (
	"time"

	"laneboard/internal/tracker"
)

// ProjectedJob is one ticket placed on a person's timeline. It is
// recomputed from scratch on every refresh cycle and never persisted.
type ProjectedJob struct {
	TicketID        string         `json:"ticketId"`
	JobID           string         `json:"jobId"`
	Status          tracker.Status `json:"status"`
	EstimateMinutes int            `json:"estimateMinutes"`
	Start           time.Time      `json:"start"`
	End             time.Time      `json:"end"`
	// Lane is the visual row-within-a-row assigned by AssignLanes so
	// temporally overlapping jobs render without collision.
	Lane int `json:"lane"`
}

// ScheduleRow is one person's projected timeline.
type ScheduleRow struct {
	Assignee  string         `json:"assignee"`
	Jobs      []ProjectedJob `json:"jobs"`
	LaneCount int            `json:"laneCount"`
	// LastEnd is when the person becomes free: the latest job end, or
	// their bare day start when they have no jobs.
	LastEnd time.Time `json:"lastEnd"`
}
