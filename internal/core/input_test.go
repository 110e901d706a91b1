package core

import "testing"

func TestInputFrameHoldRelease(t *testing.T) {
	f := NewInputFrame()

	if f.IsHeld(ActionUp) {
		t.Error("New frame should have no held actions")
	}
	if f.WasReleased(ActionInteract) {
		t.Error("New frame should have no released actions")
	}

	f.Hold(ActionUp)
	f.Release(ActionInteract)

	if !f.IsHeld(ActionUp) {
		t.Error("Hold(ActionUp) should make IsHeld true")
	}
	if f.IsHeld(ActionDown) {
		t.Error("Unrelated actions should stay unheld")
	}
	if !f.WasReleased(ActionInteract) {
		t.Error("Release(ActionInteract) should make WasReleased true")
	}
	if f.WasReleased(ActionUp) {
		t.Error("Hold should not count as a release")
	}
}

func TestInputFrameNilMaps(t *testing.T) {
	// A zero-value frame must be usable without NewInputFrame.
	var f InputFrame

	if f.IsHeld(ActionUp) || f.WasReleased(ActionUp) {
		t.Error("Zero-value frame should report no input")
	}

	f.Hold(ActionLeft)
	f.Release(ActionStart)

	if !f.IsHeld(ActionLeft) || !f.WasReleased(ActionStart) {
		t.Error("Zero-value frame should accept input after lazy allocation")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionUp)
	f.Hold(ActionLeft)
	f.Release(ActionInteract)

	f.Clear()

	if f.IsHeld(ActionUp) || f.IsHeld(ActionLeft) {
		t.Error("Clear should drop held actions")
	}
	if f.WasReleased(ActionInteract) {
		t.Error("Clear should drop released actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionDown)
	f.Release(ActionOption2)

	clone := f.Clone()
	f.Clear()

	if !clone.IsHeld(ActionDown) || !clone.WasReleased(ActionOption2) {
		t.Error("Clone should be independent of the original")
	}
}

func TestMultiInputFramePlayer(t *testing.T) {
	m := NewMultiInputFrame()

	// Unknown player gets an empty frame, not a nil map panic.
	frame := m.Player(Player1)
	if frame.IsHeld(ActionUp) {
		t.Error("Unknown player should get an empty frame")
	}

	p1 := NewInputFrame()
	p1.Hold(ActionRight)
	m.SetPlayer(Player1, p1)

	if !m.Player(Player1).IsHeld(ActionRight) {
		t.Error("SetPlayer input should be visible through Player")
	}
	if m.Player(Player2).IsHeld(ActionRight) {
		t.Error("Player inputs should be independent")
	}
}

func TestMultiInputFrameClear(t *testing.T) {
	m := NewMultiInputFrame()
	p1 := NewInputFrame()
	p1.Hold(ActionUp)
	m.SetPlayer(Player1, p1)
	p2 := NewInputFrame()
	p2.Release(ActionInteract)
	m.SetPlayer(Player2, p2)

	m.Clear()

	if m.Player(Player1).IsHeld(ActionUp) {
		t.Error("Clear should drop held actions for all players")
	}
	if m.Player(Player2).WasReleased(ActionInteract) {
		t.Error("Clear should drop released actions for all players")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionInteract, "Interact"},
		{ActionOption3, "Option3"},
		{ActionChaos, "Chaos"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action.String() = %q, expected %q", got, tc.expected)
		}
	}
}
