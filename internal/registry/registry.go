// Package registry maps variant IDs to game constructors. Variants register
// themselves from init so every front-end (terminal, SSH, window) lists and
// creates the same set.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/dasher/internal/core"
)

// Game is what a front-end drives: it owns the clock, the keyboard and the
// output, and feeds the game one InputFrame and elapsed time per tick.
type Game interface {
	// ID is the stable key used on the command line and in run storage,
	// e.g. "dasher" or "dasher-classic".
	ID() string
	Title() string

	// Reset starts a fresh run. Called before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by dt seconds.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the run into a cleared cell buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-reset game.
type Factory func() Game

type entry struct {
	title string
	new   Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. It panics on a duplicate ID, which can only be a
// programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), new: f}
}

// List returns every variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		list = append(list, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(list, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return list
}

// Create returns a new instance of the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
