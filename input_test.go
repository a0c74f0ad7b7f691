package microgui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputState_PressIsEdgeTriggered(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseLeft, true)

	if !in.MouseDown().IsLeft() || !in.MouseClicked(MouseLeft) {
		t.Fatal("expected left down and pressed")
	}
	in.epilogue()
	if in.MouseClicked(MouseLeft) {
		t.Error("expected pressed to clear after the frame")
	}

	// Repeating a held button is not a new press.
	in.SetMouseButton(MouseLeft, true)
	if in.MouseClicked(MouseLeft) {
		t.Error("expected no press for a button already down")
	}

	in.SetMouseButton(MouseRight, true)
	if in.MousePressed() != MouseRight || in.MouseDown() != MouseLeft|MouseRight {
		t.Errorf("got down %b pressed %b", in.MouseDown(), in.MousePressed())
	}

	in.SetMouseButton(MouseLeft, false)
	if in.MouseDown() != MouseRight {
		t.Errorf("expected only right held, got %b", in.MouseDown())
	}
}

func TestInputState_PressAndReleaseWithinFrame(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseLeft, true)
	in.SetMouseButton(MouseLeft, false)

	if !in.MouseClicked(MouseLeft) {
		t.Error("expected a quick click to still register as pressed")
	}
	if !in.MouseDown().IsNone() {
		t.Error("expected no button held")
	}
}

func TestInputState_DeltaAndWheel(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(10, 10)
	in.prelude()
	in.epilogue()

	in.SetMousePos(15, 7)
	in.SetMouseWheel(0, 30)
	in.SetMouseWheel(0, 30)
	in.prelude()

	if diff := cmp.Diff(Vec2{X: 5, Y: -3}, in.MouseDelta()); diff != "" {
		t.Errorf("delta (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Vec2{X: 0, Y: 60}, in.ScrollDelta()); diff != "" {
		t.Errorf("wheel (-want +got):\n%s", diff)
	}

	in.epilogue()
	in.prelude()
	if in.MouseDelta() != (Vec2{}) || in.ScrollDelta() != (Vec2{}) {
		t.Error("expected delta and wheel to reset once the pointer stops")
	}
}
