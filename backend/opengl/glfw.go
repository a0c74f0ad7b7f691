package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/microgui"
)

// ScrollStep is how many pixels one wheel notch scrolls.
const ScrollStep = 30

// GLFWInputAdapter feeds GLFW mouse events into a microgui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *microgui.InputState
}

// NewGLFWInputAdapter installs mouse callbacks on window that write to
// input, usually Canvas.Input().
func NewGLFWInputAdapter(window *glfw.Window, input *microgui.InputState) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  input,
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update samples the cursor position. Call it after glfw.PollEvents and
// before Canvas.Begin.
func (a *GLFWInputAdapter) Update() *microgui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(int(x), int(y))
	return a.input
}

// Input returns the input state the adapter writes to.
func (a *GLFWInputAdapter) Input() *microgui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToGUI(button)
	if b.IsNone() {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(int(-xoff*ScrollStep), int(-yoff*ScrollStep))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(int(xpos), int(ypos))
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) microgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return microgui.MouseLeft
	case glfw.MouseButtonRight:
		return microgui.MouseRight
	case glfw.MouseButtonMiddle:
		return microgui.MouseMiddle
	default:
		return microgui.MouseNone
	}
}
