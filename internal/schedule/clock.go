package schedule

import (
	"strconv"
	"strings"
	"time"
)

// The lunch break is fixed company-wide: 13:00-14:00 local, every day,
// independent of anyone's configured day start.
const (
	lunchStartHour = 13
	lunchEndHour   = 14
)

// DefaultDayStart applies when a person has no roster entry or their
// configured start time cannot be parsed.
const DefaultDayStart = "08:00"

// LunchStart returns the start of the lunch window on ref's date.
func LunchStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), lunchStartHour, 0, 0, 0, ref.Location())
}

// LunchEnd returns the end of the lunch window on ref's date.
func LunchEnd(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), lunchEndHour, 0, 0, 0, ref.Location())
}

// NextAvailable returns the next working instant at or after candidate.
// A candidate inside [lunchStart, lunchEnd) is pushed to lunchEnd;
// anything else passes through unchanged.
func NextAvailable(candidate time.Time) time.Time {
	start := LunchStart(candidate)
	end := LunchEnd(candidate)
	if !candidate.Before(start) && candidate.Before(end) {
		return end
	}
	return candidate
}

// DayStart combines ref's date with an "HH:MM" workday start. The
// projection is always anchored to the current date (no multi-day
// look-ahead), so ref is the wall-clock "now" of the cycle.
func DayStart(ref time.Time, hhmm string) time.Time {
	hour, minute, ok := parseHHMM(hhmm)
	if !ok {
		hour, minute, _ = parseHHMM(DefaultDayStart)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

func parseHHMM(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
