package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spinwheel/picker"
)

// GLFWInputAdapter adapts GLFW input events to picker.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *picker.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs the
// window callbacks it needs.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  picker.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update resets per-frame state and refreshes the mouse position.
// Call this at the start of each frame, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *picker.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *picker.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	pk := glfwKeyToPickerKey(key)
	if pk == picker.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(pk, true)
	case glfw.Release:
		a.input.SetKey(pk, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	pb := glfwMouseButtonToPicker(button)
	if pb < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(pb, true)
	case glfw.Release:
		a.input.SetMouseButton(pb, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToPickerKey maps GLFW keys to the keys the picker responds to.
func glfwKeyToPickerKey(key glfw.Key) picker.Key {
	switch key {
	case glfw.KeyLeft:
		return picker.KeyLeft
	case glfw.KeyRight:
		return picker.KeyRight
	case glfw.KeyUp:
		return picker.KeyUp
	case glfw.KeyDown:
		return picker.KeyDown
	case glfw.KeyHome:
		return picker.KeyHome
	case glfw.KeyEnd:
		return picker.KeyEnd
	case glfw.KeyEscape:
		return picker.KeyEscape
	default:
		return picker.KeyNone
	}
}

// glfwMouseButtonToPicker maps GLFW mouse buttons to picker buttons.
func glfwMouseButtonToPicker(button glfw.MouseButton) picker.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return picker.MouseButtonLeft
	case glfw.MouseButtonRight:
		return picker.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return picker.MouseButtonMiddle
	default:
		return -1
	}
}
