package schedule

import (
	"math"

	"laneboard/internal/tracker"
)

// Allocate computes one assignee's share of a ticket, in minutes.
//
// Once work has started the live remaining time is authoritative;
// before that the free-text team estimate is. A ticket assigned to n
// people is treated as parallelizable effort split evenly, with no
// skill or availability weighting. Per-assignee shares round half away from
// zero, so the shares may not sum exactly to the base; that drift is
// accepted, not corrected.
func Allocate(t tracker.Ticket) int {
	var base float64
	if t.Meta.RemainingSeconds != nil {
		base = math.Round(float64(*t.Meta.RemainingSeconds) / 60.0)
	} else {
		base = float64(ParseEstimate(t.Meta.TeamEst))
	}

	// Corrupted upstream data can surface negative remaining time.
	// Clamp rather than propagate a negative interval into the lanes.
	if base < 0 || math.IsNaN(base) {
		base = 0
	}

	n := len(t.Assigned.TeamMembers)
	if n <= 1 {
		return int(base)
	}
	return int(math.Round(base / float64(n)))
}
