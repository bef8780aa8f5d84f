package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultEstimateMinutes is used when an estimate is absent or garbled.
// A missing estimate must not stall the schedule, so parsing never fails.
const DefaultEstimateMinutes = 60

var (
	hoursMinutesRe = regexp.MustCompile(`^(\d+)\s*h(?:\s*(\d+)\s*m)?$`)
	clockRe        = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
	bareNumberRe   = regexp.MustCompile(`^\d+$`)
)

// ParseEstimate normalizes a free-text duration into minutes.
//
// Recognized forms, in order: "2h 30m" (and "2h"), "2:30", and a bare
// integer which is read as whole hours. Anything else falls back to
// DefaultEstimateMinutes.
func ParseEstimate(text string) int {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return DefaultEstimateMinutes
	}

	if m := hoursMinutesRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return hours*60 + minutes
	}

	if m := clockRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}

	if bareNumberRe.MatchString(text) {
		hours, _ := strconv.Atoi(text)
		return hours * 60
	}

	return DefaultEstimateMinutes
}

// FormatEstimate is the inverse of ParseEstimate. The (0, 0) pair maps
// to the empty string, the signal for "no estimate entered yet". That
// is distinct from a zero-duration task and does not round-trip.
func FormatEstimate(hours, minutes int) string {
	if hours == 0 && minutes == 0 {
		return ""
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
