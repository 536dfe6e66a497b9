package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/storage"
)

// scriptedGame ends the run after a fixed number of ticks.
type scriptedGame struct {
	ticksToEnd int
	outcome    core.Status
	steps      int
	resets     int
	lastDelta  float64
	lastInput  []core.Action
	jumps      int
	state      core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.lastDelta = dt
	g.lastInput = in.Actions()
	if in.Has(core.ActionJump) {
		g.jumps++
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}

	g.steps++
	g.state.Elapsed += dt
	g.state.Score = g.steps
	res := core.StepResult{}
	if g.steps >= g.ticksToEnd {
		g.state.Status = g.outcome
		g.state.GameOver = true
		res.Events = []core.Event{core.EventCrash}
	}
	res.State = g.state
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickUsesMeasuredDelta(t *testing.T) {
	g := &scriptedGame{ticksToEnd: 100, outcome: core.StatusLost}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{})
	m.Init()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m = step(t, m, TickMsg(start))
	if g.lastDelta != 1.0/60 {
		t.Errorf("first tick delta = %v, expected 1/60", g.lastDelta)
	}

	m = step(t, m, TickMsg(start.Add(20*time.Millisecond)))
	if d := g.lastDelta - 0.02; d > 1e-9 || d < -1e-9 {
		t.Errorf("second tick delta = %v, expected 0.02", g.lastDelta)
	}

	step(t, m, TickMsg(start.Add(5*time.Second)))
	if g.lastDelta != DefaultMaxDelta {
		t.Errorf("stalled tick delta = %v, expected %v", g.lastDelta, DefaultMaxDelta)
	}
}

func TestModelKeysReachGameOnce(t *testing.T) {
	g := &scriptedGame{ticksToEnd: 100, outcome: core.StatusLost}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{})
	m.Init()

	now := time.Now()
	m = step(t, m, runeKey(" "))
	m = step(t, m, TickMsg(now))
	if len(g.lastInput) != 1 || g.lastInput[0] != core.ActionJump {
		t.Errorf("expected a single jump, got %v", g.lastInput)
	}

	step(t, m, TickMsg(now.Add(time.Second/60)))
	if len(g.lastInput) != 0 {
		t.Errorf("input should be cleared after a tick, got %v", g.lastInput)
	}
}

func TestModelHeldJumpKeyJumpsOnce(t *testing.T) {
	g := &scriptedGame{ticksToEnd: 1000, outcome: core.StatusLost}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{})
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	m.Init()

	// Auto-repeat delivers the key again before every tick for four seconds
	for i := 0; i < 240; i++ {
		m = step(t, m, runeKey(" "))
		m = step(t, m, TickMsg(clock))
		clock = clock.Add(time.Second / 60)
	}
	if g.jumps != 1 {
		t.Fatalf("holding jump for 4s produced %d jumps, expected 1", g.jumps)
	}

	// Released long enough for the repeat to stop, then pressed again
	clock = clock.Add(300 * time.Millisecond)
	m = step(t, m, runeKey(" "))
	step(t, m, TickMsg(clock))
	if g.jumps != 2 {
		t.Errorf("a fresh press after release should jump, got %d jumps", g.jumps)
	}
}

func TestModelSavesRunOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{ticksToEnd: 3, outcome: core.StatusWon}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{Store: store})
	m.Init()

	now := time.Now()
	for i := 0; i < 6; i++ {
		m = step(t, m, TickMsg(now.Add(time.Duration(i)*time.Second/60)))
	}
	if !m.State().GameOver {
		t.Fatal("run should be over")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 saved run, got %d", len(runs))
	}
	if !runs[0].Won() || runs[0].Score != 3 {
		t.Errorf("unexpected saved run %+v", runs[0])
	}

	resets := g.resets
	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg(now.Add(time.Second)))
	if g.resets != resets+1 {
		t.Error("r after the run should reset the game")
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &scriptedGame{ticksToEnd: 1, outcome: core.StatusLost}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{Embedded: true})
	m.Init()

	// Back is ignored mid-run
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work after the run ends")
	}

	m = step(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelViewHasHelpBar(t *testing.T) {
	g := &scriptedGame{ticksToEnd: 100}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 10, TickRate: 60}, Options{})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help bar")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Errorf("view has %d lines, expected 10", lines)
	}
}
