package schedule

import "testing"

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"HoursMinutes", "2h 30m", 150},
		{"HoursOnly", "2h", 120},
		{"ZeroPaddedMinutes", "1h 05m", 65},
		{"Clock", "2:30", 150},
		{"ClockSingleDigit", "4:5", 245},
		{"BareHours", "2", 120},
		{"UpperCase", "3H 15M", 195},
		{"Whitespace", "  1h 00m  ", 60},
		{"Empty", "", DefaultEstimateMinutes},
		{"Garbage", "soonish", DefaultEstimateMinutes},
		{"Negative", "-2", DefaultEstimateMinutes},
		{"MixedGarbage", "2h-ish", DefaultEstimateMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEstimate(tt.text); got != tt.want {
				t.Errorf("ParseEstimate(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatEstimate_RoundTrip(t *testing.T) {
	for h := 0; h <= 12; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			if h == 0 && m == 0 {
				continue
			}
			text := FormatEstimate(h, m)
			if got := ParseEstimate(text); got != h*60+m {
				t.Errorf("ParseEstimate(FormatEstimate(%d, %d)) = %d, want %d", h, m, got, h*60+m)
			}
		}
	}
}

// (0, 0) formats to "" as the "unset" signal, which parses back to the
// default rather than zero. Documented non-round-trip case.
func TestFormatEstimate_UnsetSignal(t *testing.T) {
	if got := FormatEstimate(0, 0); got != "" {
		t.Errorf("FormatEstimate(0, 0) = %q, want empty", got)
	}
	if got := ParseEstimate(FormatEstimate(0, 0)); got != DefaultEstimateMinutes {
		t.Errorf("ParseEstimate(\"\") = %d, want default %d", got, DefaultEstimateMinutes)
	}
}
