package schedule

import (
	"math"
	"sync"
	"time"

	"laneboard/internal/tracker"
)

// Countdown is the per-second view of the currently active job. It is
// purely derived from the ticket and wall-clock now; there is no stored
// countdown state to drift.
type Countdown struct {
	TicketID         string    `json:"ticketId"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	End              time.Time `json:"end"`
	Percent          int       `json:"percent"`
}

// Tick recomputes the countdown for the active ticket at now.
//
// The baseline is the remaining time captured at the most recent start
// or resume, falling back to the allocated estimate when work has just
// begun. A ticket that is not in_process, or is missing its start
// instant, yields a zeroed result, never an error.
func Tick(t *tracker.Ticket, now time.Time) Countdown {
	if t == nil || t.Status != tracker.StatusInProcess || t.Meta.StartedAt == nil {
		return Countdown{}
	}

	var baseline int64
	if t.Meta.RemainingSeconds != nil {
		baseline = *t.Meta.RemainingSeconds
	} else {
		baseline = int64(Allocate(*t)) * 60
	}
	if baseline < 0 {
		baseline = 0
	}

	end := t.Meta.StartedAt.Add(time.Duration(baseline) * time.Second)
	remaining := int64(end.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	percent := 0
	if baseline > 0 {
		percent = int(math.Round(float64(baseline-remaining) / float64(baseline) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	return Countdown{
		TicketID:         t.ID,
		RemainingSeconds: remaining,
		End:              end,
		Percent:          percent,
	}
}

// Notifier fires a one-time "estimation completed" callback the instant
// a ticket's countdown reaches zero, debounced per ticket id so it does
// not repeat on every tick.
type Notifier struct {
	mu    sync.Mutex
	fired map[string]bool
	fn    func(ticketID string)
}

// NewNotifier creates a Notifier invoking fn on each first completion.
func NewNotifier(fn func(ticketID string)) *Notifier {
	return &Notifier{
		fired: make(map[string]bool),
		fn:    fn,
	}
}

// Observe inspects a countdown sample and fires the callback if this is
// the first time the ticket has hit zero.
func (n *Notifier) Observe(c Countdown) {
	if c.TicketID == "" || c.RemainingSeconds > 0 {
		return
	}

	n.mu.Lock()
	already := n.fired[c.TicketID]
	if !already {
		n.fired[c.TicketID] = true
	}
	n.mu.Unlock()

	if !already && n.fn != nil {
		n.fn(c.TicketID)
	}
}

// Reset re-arms the notifier for a ticket, used when a pause/resume
// cycle re-baselines its estimate.
func (n *Notifier) Reset(ticketID string) {
	n.mu.Lock()
	delete(n.fired, ticketID)
	n.mu.Unlock()
}
