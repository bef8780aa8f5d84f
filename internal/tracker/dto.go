package tracker

import "time"

// TicketListResponse is the top-level container for ticket list results.
type TicketListResponse struct {
	Total   int         `json:"total"`
	Tickets []TicketDTO `json:"tickets"`
}

// TicketDTO represents a single ticket on the wire.
type TicketDTO struct {
	ID           string          `json:"id"`
	JobID        string          `json:"jobId"`
	Status       string          `json:"status"`
	AssignedInfo AssignedInfoDTO `json:"assignedInfo"`
	Meta         MetaDTO         `json:"meta"`
	CreatedAt    string          `json:"createdAt"`
}

// AssignedInfoDTO carries the assignment fields we care about.
type AssignedInfoDTO struct {
	Owner       string   `json:"owner,omitempty"`
	TeamMembers []string `json:"teamMembers,omitempty"`
	EmpName     string   `json:"empName,omitempty"`
}

// MetaDTO carries the timing metadata. Instants are RFC 3339 strings;
// absent fields stay empty/nil.
type MetaDTO struct {
	TeamEst            string `json:"teamEst,omitempty"`
	RemainingSeconds   *int64 `json:"remainingSeconds,omitempty"`
	OriginalEstSeconds *int64 `json:"originalEstSeconds,omitempty"`
	StartedAt          string `json:"startedAt,omitempty"`
	PausedAt           string `json:"pausedAt,omitempty"`
	Deadline           string `json:"deadline,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
}

// TeamMemberListResponse is the container for roster results.
type TeamMemberListResponse struct {
	TeamMembers []TeamMemberDTO `json:"teamMembers"`
}

// TeamMemberDTO is a single roster entry on the wire.
type TeamMemberDTO struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime,omitempty"`
}

// ParseTime is a helper for the tracker's RFC 3339 time format.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
