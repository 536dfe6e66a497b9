package tui

import (
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
)

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "hard")
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", m.Difficulty())
	}

	next, _ := m.Update(runeKey("l"))
	m = next.(MenuModel)
	if m.Difficulty() != "easy" {
		t.Errorf("right from hard should wrap to easy, got %q", m.Difficulty())
	}

	next, _ = m.Update(runeKey("h"))
	m = next.(MenuModel)
	if m.Difficulty() != "hard" {
		t.Errorf("left from easy should wrap to hard, got %q", m.Difficulty())
	}

	next, _ = m.Update(runeKey("q"))
	if res := next.(MenuModel).Result(); !res.Quit || res.Difficulty != "hard" {
		t.Errorf("unexpected result %+v", res)
	}
}
