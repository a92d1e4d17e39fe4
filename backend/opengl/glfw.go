package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
)

// GLFWInputAdapter adapts GLFW input to scrollview.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *scrollview.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  scrollview.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, before glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *scrollview.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *scrollview.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	svKey := glfwKeyToScrollKey(key)
	if svKey == scrollview.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(svKey, true)
	case glfw.Release:
		a.input.SetKey(svKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	svButton := glfwMouseButtonToScroll(button)
	if svButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(svButton, true)
	case glfw.Release:
		a.input.SetMouseButton(svButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToScrollKey maps GLFW keys to the paging keys the scroll view handles.
func glfwKeyToScrollKey(key glfw.Key) scrollview.Key {
	switch key {
	case glfw.KeyPageUp:
		return scrollview.KeyPageUp
	case glfw.KeyPageDown:
		return scrollview.KeyPageDown
	case glfw.KeyHome:
		return scrollview.KeyHome
	case glfw.KeyEnd:
		return scrollview.KeyEnd
	default:
		return scrollview.KeyNone
	}
}

// glfwMouseButtonToScroll maps GLFW mouse buttons to scrollview mouse buttons.
func glfwMouseButtonToScroll(button glfw.MouseButton) scrollview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return scrollview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return scrollview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return scrollview.MouseButtonMiddle
	default:
		return -1
	}
}
