package tracker

import "time"

// Status is the workflow stage of a ticket. Exactly one applies at a time.
type Status string

const (
	StatusNotAssigned  Status = "not_assigned"
	StatusAssigned     Status = "assigned"
	StatusInProcess    Status = "in_process"
	StatusPaused       Status = "paused"
	StatusRFQC         Status = "rf_qc"
	StatusQCd          Status = "qcd"
	StatusQCEdits      Status = "qc_edits"
	StatusFileReceived Status = "file_received"
	StatusSent         Status = "sent"
	StatusOnHold       Status = "on_hold"
	StatusTBC          Status = "tbc"
	StatusCancelled    Status = "cancelled"
)

// IsActive reports whether the ticket is being worked on right now.
func (s Status) IsActive() bool {
	return s == StatusInProcess
}

// IsTerminal reports whether the ticket has left the production pipeline.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusFileReceived, StatusSent, StatusCancelled:
		return true
	}
	return false
}

// ScheduleStatuses is the set of statuses the availability projection
// cares about: work that occupies or will occupy a person's timeline.
func ScheduleStatuses() []Status {
	return []Status{StatusAssigned, StatusInProcess, StatusPaused, StatusQCEdits}
}

// AssignedInfo describes who a ticket belongs to. TeamMembers is the
// authoritative assignment list; EmpName is a legacy single-assignee
// field kept as a fallback for tickets assigned before the list existed.
type AssignedInfo struct {
	Owner       string
	TeamMembers []string
	EmpName     string
}

// Meta holds the timing fields that drive the schedule projection.
type Meta struct {
	// TeamEst is the free-text total estimate ("2h 30m"). Normalized by
	// the schedule package, never here.
	TeamEst string
	// RemainingSeconds is the live countdown baseline captured at the
	// most recent pause or resume. Nil until work has started.
	RemainingSeconds *int64
	// OriginalEstSeconds snapshots the estimate in seconds, set once.
	OriginalEstSeconds *int64
	// StartedAt is the instant of the most recent transition to in_process.
	StartedAt *time.Time
	PausedAt  *time.Time
	Deadline  *time.Time
	Timezone  string
}

// Ticket is a unit of production work tracked through the status
// lifecycle. The projection treats every field as read-only input.
type Ticket struct {
	ID        string
	JobID     string
	Status    Status
	Assigned  AssignedInfo
	Meta      Meta
	CreatedAt time.Time
}

// Assignees returns the names whose timelines this ticket occupies.
// Falls back to the legacy EmpName when the member list is empty.
func (t Ticket) Assignees() []string {
	if len(t.Assigned.TeamMembers) > 0 {
		return t.Assigned.TeamMembers
	}
	if t.Assigned.EmpName != "" {
		return []string{t.Assigned.EmpName}
	}
	return nil
}

// TeamMember is a roster entry. Name is the join key to ticket
// assignment; no stable ID join exists upstream.
type TeamMember struct {
	Name string
	// StartTime is the "HH:MM" 24-hour workday start. Empty means the
	// default ("08:00") applies.
	StartTime string
}
