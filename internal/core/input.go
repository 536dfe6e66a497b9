package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends map keys (terminal) or keyboard state (window) onto actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionPause          // P
	ActionRestart        // R, after the run has ended
	ActionQuit           // Q, Ctrl+C, window close
	ActionScores         // Tab, opens the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one tick.
// Actions are edge-triggered: the front-end sets one when its key goes down
// and clears the frame after the tick consumes it. The zero value is empty.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < 32 {
		f.bits |= 1 << uint(a)
	}
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < 32 && f.bits&(1<<uint(a)) != 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionJump; a <= ActionScores; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
