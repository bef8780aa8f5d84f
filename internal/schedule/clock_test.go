package schedule

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestNextAvailable(t *testing.T) {
	tests := []struct {
		name      string
		candidate time.Time
		want      time.Time
	}{
		{"Morning", at(9, 30), at(9, 30)},
		{"JustBeforeLunch", at(12, 59), at(12, 59)},
		{"LunchStartInclusive", at(13, 0), at(14, 0)},
		{"MidLunch", at(13, 30), at(14, 0)},
		{"LunchEndExclusive", at(14, 0), at(14, 0)},
		{"Afternoon", at(16, 45), at(16, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextAvailable(tt.candidate); !got.Equal(tt.want) {
				t.Errorf("NextAvailable(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestDayStart(t *testing.T) {
	ref := at(11, 22)

	tests := []struct {
		name string
		hhmm string
		want time.Time
	}{
		{"Configured", "09:30", at(9, 30)},
		{"Default", "", at(8, 0)},
		{"Garbage", "early", at(8, 0)},
		{"OutOfRangeHour", "25:00", at(8, 0)},
		{"OutOfRangeMinute", "08:75", at(8, 0)},
		{"Midnight", "00:00", at(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayStart(ref, tt.hhmm); !got.Equal(tt.want) {
				t.Errorf("DayStart(%q) = %v, want %v", tt.hhmm, got, tt.want)
			}
		})
	}
}

func TestLunchWindow_AnchoredToRefDate(t *testing.T) {
	ref := time.Date(2026, time.July, 4, 9, 0, 0, 0, time.UTC)
	if got := LunchStart(ref); got.Day() != 4 || got.Hour() != 13 {
		t.Errorf("LunchStart(%v) = %v, want 13:00 on the same day", ref, got)
	}
	if got := LunchEnd(ref); got.Day() != 4 || got.Hour() != 14 {
		t.Errorf("LunchEnd(%v) = %v, want 14:00 on the same day", ref, got)
	}
}
