package tracker

import "time"

// Client is the interface for the external ticket/roster service.
type Client interface {
	ListTickets(statuses []Status) ([]Ticket, error)
	ListTeamMembers() ([]TeamMember, error)
}

// Config holds the connection settings for the tracker service.
type Config struct {
	BaseURL string
	Token   string

	// RequestDelay spaces out ticket list requests so the poller cannot
	// hammer the upstream when cycles overlap.
	RequestDelay time.Duration
}

// NewClient creates a tracker client for the provided configuration.
func NewClient(cfg Config) Client {
	return newRESTClient(cfg)
}
