// Package tui provides the Bubble Tea front-end for the runner.
// It handles the terminal UI loop, input mapping, run history and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickDelta returns the seconds between two ticks, clamped to [0, maxDelta].
// The first tick (zero last) counts as one nominal interval.
func tickDelta(last, now time.Time, tickRate int, maxDelta float64) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if last.IsZero() {
		return 1 / float64(tickRate)
	}

	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}
