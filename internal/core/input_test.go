package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	if !f.Has(ActionPause) {
		t.Error("Expected Pause to be set")
	}
	if f.Has(ActionUp) {
		t.Error("Up should not be set")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestInputFrameDirectionOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	dirs := f.Directions()
	if len(dirs) != 2 || dirs[0] != ActionUp || dirs[1] != ActionLeft {
		t.Errorf("Directions() = %v, expected [Up Left]", dirs)
	}

	f.Clear()
	if len(f.Directions()) != 0 || f.Has(ActionPause) {
		t.Error("Clear should drop actions and directions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
