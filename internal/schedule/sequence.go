package schedule

import (
	"slices"
	"time"

	"laneboard/internal/tracker"
)

// Sequence projects one person's tickets onto a single-lane timeline.
//
// The model is a single-server FIFO queue: at most one job is genuinely
// in flight (its real start time is authoritative) and the backlog is
// computed forward from the day start, skipping the lunch window. The
// function is pure and deterministic for a given input and now.
func Sequence(tickets []tracker.Ticket, dayStartHHMM string, now time.Time) []ProjectedJob {
	if len(tickets) == 0 {
		return nil
	}

	ordered := make([]tracker.Ticket, len(tickets))
	copy(ordered, tickets)
	slices.SortStableFunc(ordered, compareForSequence)

	lunchStart := LunchStart(now)
	cursor := NextAvailable(DayStart(now, dayStartHHMM))

	jobs := make([]ProjectedJob, 0, len(ordered))
	activeClaimed := false

	for _, t := range ordered {
		estimate := Allocate(t)

		// The cursor may have landed inside lunch while idle.
		cursor = NextAvailable(cursor)

		// Only the first in_process ticket with a real start instant is
		// genuinely underway; any further in_process tickets are a
		// display anomaly and queue behind the cursor like everyone else.
		start := cursor
		if !activeClaimed && t.Status == tracker.StatusInProcess && t.Meta.StartedAt != nil {
			start = *t.Meta.StartedAt
			activeClaimed = true
		}

		end := start.Add(time.Duration(estimate) * time.Minute)

		// A job already underway when lunch begins absorbs the hour as
		// dead time inside the job. Ending exactly at lunch does not
		// count as straddling.
		if start.Before(lunchStart) && end.After(lunchStart) {
			end = end.Add(time.Hour)
		}

		jobs = append(jobs, ProjectedJob{
			TicketID:        t.ID,
			JobID:           t.JobID,
			Status:          t.Status,
			EstimateMinutes: estimate,
			Start:           start,
			End:             end,
		})
		cursor = end
	}

	return jobs
}

// compareForSequence orders in_process tickets first (earlier start
// wins, createdAt as fallback), then everything else FIFO by intake.
func compareForSequence(a, b tracker.Ticket) int {
	aActive := a.Status == tracker.StatusInProcess
	bActive := b.Status == tracker.StatusInProcess
	if aActive != bActive {
		if aActive {
			return -1
		}
		return 1
	}
	return anchorTime(a).Compare(anchorTime(b))
}

func anchorTime(t tracker.Ticket) time.Time {
	if t.Status == tracker.StatusInProcess && t.Meta.StartedAt != nil {
		return *t.Meta.StartedAt
	}
	return t.CreatedAt
}
