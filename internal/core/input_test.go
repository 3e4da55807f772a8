package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionStart)
	f.PointerDX = 3

	if !f.Has(ActionLeft) || !f.Has(ActionStart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionStart) || f.PointerDX != 0 {
		t.Errorf("Clear should reset the frame, got %+v", f)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionStart, "Start"},
		{ActionSettings, "Settings"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %v, want 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() with zero rate = %v, want 1/60", got)
	}
}
