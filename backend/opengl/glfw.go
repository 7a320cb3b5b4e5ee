package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textedit"
)

// GLFWInputAdapter turns GLFW callbacks into textedit events.
// Pointer positions are reported in framebuffer pixels.
type GLFWInputAdapter struct {
	window    *glfw.Window
	queue     *textedit.EventQueue
	buttons   textedit.ButtonMask
	mods      textedit.Modifier
	textInput bool
}

// NewGLFWInputAdapter installs input callbacks on window.
// Text input starts disabled; see SetTextInput.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		queue:  textedit.NewEventQueue(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Drain returns the events received since the last call.
func (a *GLFWInputAdapter) Drain() []textedit.Event {
	return a.queue.Drain()
}

// SetTextInput attaches or detaches the char callback. Use it as a
// textedit.TextInputHandler so characters are only delivered while an editor
// has focus.
func (a *GLFWInputAdapter) SetTextInput(enabled bool) {
	if enabled == a.textInput {
		return
	}
	a.textInput = enabled
	if enabled {
		a.window.SetCharCallback(a.charCallback)
	} else {
		a.window.SetCharCallback(nil)
	}
}

// TextInputEnabled reports whether the char callback is attached.
func (a *GLFWInputAdapter) TextInputEnabled() bool { return a.textInput }

// ContentScale returns framebuffer pixels per window unit.
func (a *GLFWInputAdapter) ContentScale() float32 {
	return framebufferScale(a.window)
}

func framebufferScale(w *glfw.Window) float32 {
	ww, _ := w.GetSize()
	fw, _ := w.GetFramebufferSize()
	if ww <= 0 || fw <= 0 {
		return 1
	}
	return float32(fw) / float32(ww)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.mods = convertMods(mods)
	if action == glfw.Release {
		return
	}
	k := glfwKeyToKey(key)
	if k == textedit.KeyNone {
		return
	}
	a.queue.Push(textedit.KeyPress(k, a.mods))
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.queue.Push(textedit.TextInput(string(char)))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}
	a.mods = convertMods(mods)

	x, y := a.cursor()
	switch action {
	case glfw.Press:
		a.buttons = a.buttons.With(b)
		ev := textedit.PointerDown(x, y, b)
		ev.Buttons = a.buttons
		ev.Mods = a.mods
		a.queue.Push(ev)
	case glfw.Release:
		a.buttons &^= textedit.ButtonMask(0).With(b)
		ev := textedit.PointerUp(x, y, b)
		ev.Buttons = a.buttons
		a.queue.Push(ev)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	s := framebufferScale(w)
	a.queue.Push(textedit.PointerMove(float32(xpos)*s, float32(ypos)*s, a.buttons))
}

func (a *GLFWInputAdapter) cursor() (float32, float32) {
	x, y := a.window.GetCursorPos()
	s := framebufferScale(a.window)
	return float32(x) * s, float32(y) * s
}

func convertMods(m glfw.ModifierKey) textedit.Modifier {
	var out textedit.Modifier
	if m&glfw.ModShift != 0 {
		out |= textedit.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= textedit.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= textedit.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= textedit.ModSuper
	}
	return out
}

// glfwKeyToKey maps GLFW keys to editor keys.
func glfwKeyToKey(key glfw.Key) textedit.Key {
	switch key {
	case glfw.KeyTab:
		return textedit.KeyTab
	case glfw.KeyLeft:
		return textedit.KeyLeft
	case glfw.KeyRight:
		return textedit.KeyRight
	case glfw.KeyUp:
		return textedit.KeyUp
	case glfw.KeyDown:
		return textedit.KeyDown
	case glfw.KeyPageUp:
		return textedit.KeyPageUp
	case glfw.KeyPageDown:
		return textedit.KeyPageDown
	case glfw.KeyHome:
		return textedit.KeyHome
	case glfw.KeyEnd:
		return textedit.KeyEnd
	case glfw.KeyDelete:
		return textedit.KeyDelete
	case glfw.KeyBackspace:
		return textedit.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return textedit.KeyEnter
	case glfw.KeyEscape:
		return textedit.KeyEscape
	case glfw.KeyA:
		return textedit.KeyA
	case glfw.KeyC:
		return textedit.KeyC
	case glfw.KeyV:
		return textedit.KeyV
	case glfw.KeyX:
		return textedit.KeyX
	default:
		return textedit.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to editor mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) textedit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return textedit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return textedit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return textedit.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWClipboard is a ClipboardProvider backed by the system clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard creates a clipboard provider for window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText implements textedit.ClipboardProvider.
func (c *GLFWClipboard) GetText() (string, bool) {
	s := c.window.GetClipboardString()
	return s, s != ""
}

// SetText implements textedit.ClipboardProvider.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
