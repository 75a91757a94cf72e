package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionConfirm)

	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if !f.Has(ActionConfirm) {
		t.Error("Has(Confirm) should be true")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}

	copied := f
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
	if copied.Count(ActionLeft) != 2 {
		t.Error("a copied frame should not be affected by Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRight)
	if f.Count(ActionRight) != 1 {
		t.Error("Set on a zero frame should record the action")
	}
	f.Set(ActionNone)
	f.Set(Action(99))
	if f.Count(ActionNone) != 0 || f.Count(Action(99)) != 0 {
		t.Error("out of range actions should be ignored")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRestart.String() != "Restart" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
