package poller

import (
	"context"
	"sync"
	"time"

	"laneboard/internal/schedule"
	"laneboard/internal/tracker"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one complete projection cycle. The schedule is derived
// read-only state: it is never written back to the tracker.
type Snapshot struct {
	Rows      []schedule.ScheduleRow `json:"rows"`
	Tickets   []tracker.Ticket       `json:"tickets"`
	FetchedAt time.Time              `json:"fetchedAt"`
}

// Poller refreshes the projection from the tracker on a fixed interval.
// On upstream failure the previous snapshot stays available: a stale
// board beats a blank one.
type Poller struct {
	client   tracker.Client
	interval time.Duration
	now      func() time.Time
	notifier *schedule.Notifier

	mu      sync.RWMutex
	snap    *Snapshot
	lastErr error
}

// New creates a Poller. now is injectable so tests can pin the
// projection anchor; pass nil for wall-clock time.
func New(client tracker.Client, interval time.Duration, now func() time.Time) *Poller {
	if now == nil {
		now = time.Now
	}
	p := &Poller{
		client:   client,
		interval: interval,
		now:      now,
	}
	p.notifier = schedule.NewNotifier(func(ticketID string) {
		log.Info().Str("ticket", ticketID).Msg("Estimation completed")
	})
	return p
}

// Run refreshes immediately, then on every interval tick until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Poller stopping")
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh runs one poll cycle: tickets and roster are fetched
// concurrently, then the projection is rebuilt from scratch. The
// tracker results are treated as a fresh, complete snapshot; there is
// no diffing against prior state.
func (p *Poller) Refresh(ctx context.Context) {
	var tickets []tracker.Ticket
	var members []tracker.TeamMember

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = p.client.ListTickets(tracker.ScheduleStatuses())
		return err
	})
	g.Go(func() error {
		var err error
		members, err = p.client.ListTeamMembers()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Poll cycle failed; keeping previous snapshot")
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		return
	}

	now := p.now()
	rows := schedule.Build(tickets, members, now)
	snap := &Snapshot{
		Rows:      rows,
		Tickets:   tickets,
		FetchedAt: now,
	}

	p.mu.Lock()
	p.snap = snap
	p.lastErr = nil
	p.mu.Unlock()

	if active := schedule.ActiveTicket(tickets, ""); active != nil {
		p.notifier.Observe(schedule.Tick(active, now))
	}

	log.Debug().
		Int("tickets", len(tickets)).
		Int("rows", len(rows)).
		Msg("Projection rebuilt")
}

// Snapshot returns the most recent successful projection, or nil when
// no cycle has ever succeeded. LastErr reports the most recent failure.
func (p *Poller) Snapshot() (*Snapshot, error) {
	p.mu.RLock()
	snap, err := p.snap, p.lastErr
	p.mu.RUnlock()
	return snap, err
}

// Countdown computes the live countdown for an assignee's active ticket
// (any assignee when empty) against the latest snapshot.
func (p *Poller) Countdown(assignee string, now time.Time) schedule.Countdown {
	snap, _ := p.Snapshot()
	if snap == nil {
		return schedule.Countdown{}
	}
	active := schedule.ActiveTicket(snap.Tickets, assignee)
	c := schedule.Tick(active, now)
	p.notifier.Observe(c)
	return c
}
