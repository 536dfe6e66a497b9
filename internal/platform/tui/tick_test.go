package tui

import (
	"testing"
	"time"
)

func TestTickDelta(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		expected float64
	}{
		{"first tick is nominal", time.Time{}, base, 1.0 / 50},
		{"measured", base, base.Add(40 * time.Millisecond), 0.04},
		{"clock went back", base, base.Add(-time.Second), 0},
		{"stall is clamped", base, base.Add(3 * time.Second), 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tickDelta(tc.last, tc.now, 50, 0.25)
			if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("tickDelta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTickDeltaDefaults(t *testing.T) {
	if got := tickDelta(time.Time{}, time.Now(), 0, 0); got != 1.0/60 {
		t.Errorf("zero tick rate should fall back to 60, got %v", got)
	}

	base := time.Now()
	if got := tickDelta(base, base.Add(2*time.Second), 60, 0); got != 2 {
		t.Errorf("zero max delta disables the clamp, got %v", got)
	}
}
