package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionExchange) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionExchange)
	f.Set(ActionLeft)
	if !f.Has(ActionExchange) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionExchange) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestMultiInputFramePlayers(t *testing.T) {
	m := NewMultiInputFrame()
	if m.Player1().Has(ActionUp) {
		t.Error("missing player should yield an empty frame")
	}

	p1 := NewInputFrame()
	p1.Set(ActionUp)
	m.SetPlayer(Player1, p1)
	if !m.Player1().Has(ActionUp) {
		t.Error("Player1 should see its own input")
	}
	if m.Player(Player2).Has(ActionUp) {
		t.Error("Player2 should not see Player1 input")
	}

	m.Clear()
	if m.Player1().Has(ActionUp) {
		t.Error("Clear should reset every player")
	}
}

func TestActionString(t *testing.T) {
	if ActionRaise.String() != "Raise" {
		t.Errorf("ActionRaise.String() = %q", ActionRaise.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
