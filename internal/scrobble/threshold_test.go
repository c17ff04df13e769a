package scrobble_test

import (
	"math"
	"testing"

	"github.com/tiagoad/web-scrobbler/internal/scrobble"
)

func TestSecondsToScrobble(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
	}{
		{"unknown duration", 0, scrobble.DefaultScrobbleTime},
		{"negative duration", -10, scrobble.DefaultScrobbleTime},
		{"nan duration", math.NaN(), scrobble.DefaultScrobbleTime},
		{"too short", 5, scrobble.NeverScrobble},
		{"just below minimum", 29.9, scrobble.NeverScrobble},
		{"minimum duration", 30, 15},
		{"exact half", 100, 50},
		{"rounds half up", 31, 16},
		{"fractional duration", 271.5, 136},
		{"at cap boundary", 480, 240},
		{"clamped to cap", 600, scrobble.MaxScrobbleTime},
		{"long track", 7200, scrobble.MaxScrobbleTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrobble.SecondsToScrobble(tt.duration); got != tt.want {
				t.Errorf("SecondsToScrobble(%v) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestSecondsToScrobbleRange(t *testing.T) {
	// Result is always the sentinel or within [1, MaxScrobbleTime].
	for d := 0.0; d <= 1000; d += 0.5 {
		got := scrobble.SecondsToScrobble(d)
		if got == scrobble.NeverScrobble {
			continue
		}
		if got < 1 || got > scrobble.MaxScrobbleTime {
			t.Fatalf("SecondsToScrobble(%v) = %d, outside [1, %d]", d, got, scrobble.MaxScrobbleTime)
		}
	}
}

func TestCalculatorPercentOverride(t *testing.T) {
	calc := scrobble.Calculator{Percent: 90}

	if got := calc.SecondsToScrobble(100); got != 90 {
		t.Errorf("90%% of 100s = %d, want 90", got)
	}
	// Short-track and unknown-duration rules are independent of percent.
	if got := calc.SecondsToScrobble(10); got != scrobble.NeverScrobble {
		t.Errorf("short track = %d, want %d", got, scrobble.NeverScrobble)
	}
	if got := calc.SecondsToScrobble(0); got != scrobble.DefaultScrobbleTime {
		t.Errorf("unknown duration = %d, want %d", got, scrobble.DefaultScrobbleTime)
	}
	// Cap still applies.
	if got := calc.SecondsToScrobble(600); got != scrobble.MaxScrobbleTime {
		t.Errorf("capped delay = %d, want %d", got, scrobble.MaxScrobbleTime)
	}
}
