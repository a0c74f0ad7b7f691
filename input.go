package microgui

// MouseButton is a bitmask of mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle

	MouseNone MouseButton = 0
)

// IsLeft reports whether the left button is part of the mask.
func (b MouseButton) IsLeft() bool { return b&MouseLeft != 0 }

// IsRight reports whether the right button is part of the mask.
func (b MouseButton) IsRight() bool { return b&MouseRight != 0 }

// IsMiddle reports whether the middle button is part of the mask.
func (b MouseButton) IsMiddle() bool { return b&MouseMiddle != 0 }

// IsNone reports whether no button is part of the mask.
func (b MouseButton) IsNone() bool { return b == 0 }

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar,
// between Canvas.End and the next Canvas.Begin. Widgets only read it.
type InputState struct {
	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2

	mouseDown    MouseButton
	mousePressed MouseButton // Buttons that went down since the last frame

	scrollDelta Vec2
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y int) {
	s.mousePos = Vec2{X: x, Y: y}
}

// SetMouseButton sets mouse button state. A button that goes down is
// also recorded as pressed for the next frame.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if down {
		s.mousePressed |= button &^ s.mouseDown
		s.mouseDown |= button
	} else {
		s.mouseDown &^= button
	}
}

// SetMouseWheel accumulates a wheel delta. Positive Y scrolls content down.
func (s *InputState) SetMouseWheel(x, y int) {
	s.scrollDelta.X += x
	s.scrollDelta.Y += y
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 { return s.mousePos }

// MouseDelta returns how far the pointer moved since the previous frame.
func (s *InputState) MouseDelta() Vec2 { return s.mouseDelta }

// MouseDown returns the buttons currently held.
func (s *InputState) MouseDown() MouseButton { return s.mouseDown }

// MousePressed returns the buttons that went down this frame.
func (s *InputState) MousePressed() MouseButton { return s.mousePressed }

// ScrollDelta returns the accumulated wheel delta for this frame.
func (s *InputState) ScrollDelta() Vec2 { return s.scrollDelta }

// MouseClicked returns true if any button in b went down this frame.
func (s *InputState) MouseClicked(b MouseButton) bool {
	return s.mousePressed&b != 0
}

// prelude computes the per-frame delta. Called by Canvas.Begin.
func (s *InputState) prelude() {
	s.mouseDelta = s.mousePos.Sub(s.lastMousePos)
}

// epilogue clears edge-triggered state. Called by Canvas.End.
func (s *InputState) epilogue() {
	s.mousePressed = MouseNone
	s.scrollDelta = Vec2{}
	s.lastMousePos = s.mousePos
}
