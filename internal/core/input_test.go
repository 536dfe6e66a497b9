package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true after Set")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame(ActionPause, ActionJump, ActionNone)
	got := f.Actions()
	if len(got) != 2 || got[0] != ActionJump || got[1] != ActionPause {
		t.Errorf("Actions() = %v, expected [Jump Pause]", got)
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never set")
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		s    Status
		want bool
	}{
		{StatusRunning, false},
		{StatusWon, true},
		{StatusLost, true},
	}
	for _, tc := range tests {
		if got := tc.s.Terminal(); got != tc.want {
			t.Errorf("%s.Terminal() = %v, expected %v", tc.s, got, tc.want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventJump}}
	if !r.Has(EventJump) {
		t.Error("Has(EventJump) should be true")
	}
	if r.Has(EventCrash) {
		t.Error("Has(EventCrash) should be false")
	}
}
