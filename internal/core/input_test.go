package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionNone)
	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) = false after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		delta  Point
		ok     bool
	}{
		{ActionUp, Pt(0, -1), true},
		{ActionDown, Pt(0, 1), true},
		{ActionLeft, Pt(-1, 0), true},
		{ActionRight, Pt(1, 0), true},
		{ActionQuit, Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			delta, ok := tc.action.Direction()
			if ok != tc.ok || delta != tc.delta {
				t.Errorf("Direction() = %v, %v; expected %v, %v", delta, ok, tc.delta, tc.ok)
			}
		})
	}
}
