package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/storage"
)

func TestStatsLine(t *testing.T) {
	if got := StatsLine(nil); got != "No runs yet" {
		t.Errorf("StatsLine(nil) = %q", got)
	}

	line := StatsLine(&storage.Stats{
		Runs:       1200,
		Wins:       3,
		BestScore:  12,
		AvgScore:   5.25,
		FastestWin: 24780 * time.Millisecond,
	})
	for _, want := range []string{"1,200 runs", "3 won", "best 12", "fastest win 24.8s"} {
		if !strings.Contains(line, want) {
			t.Errorf("StatsLine() = %q, missing %q", line, want)
		}
	}

	noWins := StatsLine(&storage.Stats{Runs: 2, BestScore: 4, AvgScore: 3})
	if strings.Contains(noWins, "fastest") {
		t.Errorf("no wins should omit the fastest win: %q", noWins)
	}
}

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 12, Outcome: storage.OutcomeWon, Duration: 25 * time.Second, CreatedAt: time.Now()},
		{Score: 3, Outcome: storage.OutcomeLost, Duration: 8500 * time.Millisecond, CreatedAt: time.Now()},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "12" || rows[0][2] != "won" || rows[0][3] != "25.0s" {
		t.Errorf("unexpected first row %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][3] != "8.5s" {
		t.Errorf("unexpected second row %v", rows[1])
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "BEST RUNS") {
		t.Errorf("board should open on the best runs:\n%s", m.View())
	}

	next, _ := m.Update(runeKey("v"))
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Errorf("v should switch to recent runs:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
	if cmd == nil {
		t.Error("a standalone board should end its program on back")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestScoreboardEmbeddedQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	m.embedded = true

	next, cmd := m.Update(runeKey("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd != nil {
		t.Error("an embedded board should leave quitting to its parent")
	}
}
