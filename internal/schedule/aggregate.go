package schedule

import (
	"slices"
	"strings"
	"time"

	"laneboard/internal/tracker"
)

// Build is the sole entry point of the projection: it turns a fresh
// ticket/roster snapshot into per-person schedule rows.
//
// A ticket with n assignees appears once in each of the n rows: every
// person's timeline must show their share of it. Rows are sorted by
// soonest availability so the top of the board answers "who is free
// next". Empty tickets or an empty roster produce an empty result.
func Build(tickets []tracker.Ticket, members []tracker.TeamMember, now time.Time) []ScheduleRow {
	dayStarts := make(map[string]string, len(members))
	for _, m := range members {
		if m.StartTime != "" {
			dayStarts[m.Name] = m.StartTime
		}
	}

	groups := make(map[string][]tracker.Ticket)
	var names []string
	for _, t := range tickets {
		for _, name := range t.Assignees() {
			if _, seen := groups[name]; !seen {
				names = append(names, name)
			}
			groups[name] = append(groups[name], t)
		}
	}

	rows := make([]ScheduleRow, 0, len(names))
	for _, name := range names {
		hhmm := dayStarts[name]
		if hhmm == "" {
			hhmm = DefaultDayStart
		}

		jobs := Sequence(groups[name], hhmm, now)
		laneCount := AssignLanes(jobs)

		lastEnd := DayStart(now, hhmm)
		for _, j := range jobs {
			if j.End.After(lastEnd) {
				lastEnd = j.End
			}
		}

		rows = append(rows, ScheduleRow{
			Assignee:  name,
			Jobs:      jobs,
			LaneCount: laneCount,
			LastEnd:   lastEnd,
		})
	}

	slices.SortStableFunc(rows, func(a, b ScheduleRow) int {
		if c := a.LastEnd.Compare(b.LastEnd); c != 0 {
			return c
		}
		return strings.Compare(a.Assignee, b.Assignee)
	})

	return rows
}

// ActiveTicket resolves the countdown target among a snapshot's
// tickets: the in_process ticket with the earliest real start instant,
// matching the sequencer's tie-break so the dashboard and the timeline
// agree on which job is "the" active one. An empty assignee matches
// any row.
func ActiveTicket(tickets []tracker.Ticket, assignee string) *tracker.Ticket {
	var active *tracker.Ticket
	for i := range tickets {
		t := &tickets[i]
		if t.Status != tracker.StatusInProcess || t.Meta.StartedAt == nil {
			continue
		}
		if assignee != "" && !slices.Contains(t.Assignees(), assignee) {
			continue
		}
		if active == nil || t.Meta.StartedAt.Before(*active.Meta.StartedAt) {
			active = t
		}
	}
	return active
}
