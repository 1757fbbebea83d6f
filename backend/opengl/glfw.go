package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/life"
)

// GLFWInputAdapter adapts GLFW input to life.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *life.InputState
	wheel  float32
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  life.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetScrollCallback(adapter.scrollCallback)

	return adapter
}

// Poll collects the events of one frame. dt is the frame time in seconds
// and drives key repeat.
func (a *GLFWInputAdapter) Poll(dt float32) *life.InputState {
	a.input.Reset()
	a.wheel = 0
	glfw.PollEvents()

	a.input.SetWheel(a.wheel)
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.UpdateKeyRepeat(dt)

	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToLifeKey(key)
	if k == life.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.wheel += float32(yoff)
}

var glfwKeys = map[glfw.Key]life.Key{
	glfw.KeyW:            life.KeyW,
	glfw.KeyA:            life.KeyA,
	glfw.KeyS:            life.KeyS,
	glfw.KeyD:            life.KeyD,
	glfw.KeyH:            life.KeyH,
	glfw.KeyJ:            life.KeyJ,
	glfw.KeyK:            life.KeyK,
	glfw.KeyL:            life.KeyL,
	glfw.KeyP:            life.KeyP,
	glfw.KeyN:            life.KeyN,
	glfw.KeyG:            life.KeyG,
	glfw.KeyF:            life.KeyF,
	glfw.KeyC:            life.KeyC,
	glfw.KeyX:            life.KeyX,
	glfw.KeyZ:            life.KeyZ,
	glfw.KeyR:            life.KeyR,
	glfw.KeyO:            life.KeyO,
	glfw.Key0:            life.Key0,
	glfw.Key1:            life.Key1,
	glfw.Key2:            life.Key2,
	glfw.Key3:            life.Key3,
	glfw.Key4:            life.Key4,
	glfw.Key5:            life.Key5,
	glfw.Key6:            life.Key6,
	glfw.Key7:            life.Key7,
	glfw.Key8:            life.Key8,
	glfw.Key9:            life.Key9,
	glfw.KeyMinus:        life.KeyMinus,
	glfw.KeyEqual:        life.KeyEqual,
	glfw.KeyLeftBracket:  life.KeyLeftBracket,
	glfw.KeyRightBracket: life.KeyRightBracket,
	glfw.KeyComma:        life.KeyComma,
	glfw.KeyPeriod:       life.KeyPeriod,
	glfw.KeyTab:          life.KeyTab,
	glfw.KeySpace:        life.KeySpace,
	glfw.KeyEnter:        life.KeyEnter,
	glfw.KeyBackspace:    life.KeyBackspace,
	glfw.KeyEscape:       life.KeyEscape,
	glfw.KeyF12:          life.KeyF12,
}

// glfwKeyToLifeKey maps GLFW keys to life keys.
func glfwKeyToLifeKey(key glfw.Key) life.Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return life.KeyNone
}
