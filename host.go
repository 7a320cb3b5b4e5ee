package textedit

import (
	"slices"

	"github.com/go-logr/logr"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// TextInputHandler is told when system text input should start (true) or
// stop (false), e.g. to attach a GLFW char callback.
type TextInputHandler func(enabled bool)

// Host owns a set of editors and routes events to them.
//
// It keeps at most one editor active, cycles focus with Tab and derives the
// "any editor active" signal after every dispatch.
type Host struct {
	editors   []*Editor
	style     Style
	renderer  Renderer
	atlas     *GlyphAtlas
	log       logr.Logger
	textInput TextInputHandler
	capturing bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithStyle sets the style used by Render.
func WithStyle(style Style) HostOption {
	return func(h *Host) { h.style = style }
}

// WithRenderer sets the renderer and the glyph atlas used by Render.
func WithRenderer(r Renderer, atlas *GlyphAtlas) HostOption {
	return func(h *Host) {
		h.renderer = r
		h.atlas = atlas
	}
}

// WithHostLogger sets the host's logger.
func WithHostLogger(l logr.Logger) HostOption {
	return func(h *Host) { h.log = l }
}

// WithTextInputHandler sets the callback for text input capture changes.
func WithTextInputHandler(fn TextInputHandler) HostOption {
	return func(h *Host) { h.textInput = fn }
}

// NewHost creates an empty host.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		style: DefaultStyle(),
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add appends editors. Later editors are on top for hit testing.
func (h *Host) Add(editors ...*Editor) {
	for _, e := range editors {
		if e == nil || slices.Contains(h.editors, e) {
			continue
		}
		h.editors = append(h.editors, e)
	}
	h.enforceSingleFocus(h.Focused())
	h.updateTextInput()
}

// Remove detaches an editor.
func (h *Host) Remove(e *Editor) {
	i := slices.Index(h.editors, e)
	if i < 0 {
		return
	}
	h.editors = slices.Delete(h.editors, i, i+1)
	h.updateTextInput()
}

// Editors returns the editors in stacking order.
func (h *Host) Editors() []*Editor { return h.editors }

// Style returns the current style.
func (h *Host) Style() Style { return h.style }

// SetStyle sets the style.
func (h *Host) SetStyle(style Style) { h.style = style }

// Focused returns the active editor, or nil.
func (h *Host) Focused() *Editor {
	for _, e := range h.editors {
		if e.Active() {
			return e
		}
	}
	return nil
}

// Focus activates e and deactivates every other editor.
// A nil e removes focus from all editors.
func (h *Host) Focus(e *Editor) {
	h.enforceSingleFocus(e)
	if e != nil && !e.Active() {
		e.SetActive(true)
	}
	h.updateTextInput()
}

// SetScale sets the device pixel scale of every editor.
func (h *Host) SetScale(s float32) {
	for _, e := range h.editors {
		e.SetScale(s)
	}
}

// TextInputActive reports whether any editor is active.
func (h *Host) TextInputActive() bool { return h.capturing }

// Dispatch routes one event and returns true if any content changed.
//
// A pointer press goes to the topmost editor under the pointer, and the
// others lose focus if that editor took it; with no editor under it every
// editor sees the press and deactivates. Tab and Shift+Tab move focus. Everything else goes to every
// editor; inactive editors ignore keys and text.
func (h *Host) Dispatch(ev Event) bool {
	changed := false

	switch {
	case ev.Type == EventPointerDown:
		if target := h.editorAt(ev.X, ev.Y); target != nil {
			changed = target.HandleEvent(ev)
			if target.Active() {
				h.enforceSingleFocus(target)
			}
		} else {
			for _, e := range h.editors {
				changed = e.HandleEvent(ev) || changed
			}
		}

	case ev.Type == EventKeyDown && ev.Key == KeyTab && !ev.Mods.Has(ModCtrl):
		h.cycleFocus(ev.Mods.Has(ModShift))

	default:
		for _, e := range h.editors {
			changed = e.HandleEvent(ev) || changed
		}
	}

	h.updateTextInput()
	return changed
}

// DispatchAll routes events in order and returns true if any content changed.
func (h *Host) DispatchAll(events []Event) bool {
	changed := false
	for _, ev := range events {
		changed = h.Dispatch(ev) || changed
	}
	return changed
}

// Render draws every editor through the configured renderer.
func (h *Host) Render() error {
	if h.renderer == nil {
		return nil
	}
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	for _, e := range h.editors {
		BuildDrawList(dl, e.RenderModel(), h.style, h.atlas)
	}
	dl.Finalize()
	return h.renderer.Render(dl)
}

// Resize notifies the renderer of a display size change.
func (h *Host) Resize(width, height int) {
	if h.renderer != nil {
		h.renderer.Resize(width, height)
	}
}

func (h *Host) editorAt(x, y float32) *Editor {
	for i := len(h.editors) - 1; i >= 0; i-- {
		e := h.editors[i]
		if e.Contains(Vec2{X: x / e.Scale(), Y: y / e.Scale()}) {
			return e
		}
	}
	return nil
}

// enforceSingleFocus deactivates every editor except keep.
func (h *Host) enforceSingleFocus(keep *Editor) {
	for _, e := range h.editors {
		if e != keep && e.Active() {
			e.SetActive(false)
		}
	}
}

func (h *Host) cycleFocus(backward bool) {
	n := len(h.editors)
	if n == 0 {
		return
	}
	cur := slices.IndexFunc(h.editors, (*Editor).Active)
	var next int
	switch {
	case cur < 0 && backward:
		next = n - 1
	case cur < 0:
		next = 0
	case backward:
		next = (cur - 1 + n) % n
	default:
		next = (cur + 1) % n
	}
	h.log.V(1).Info("focus moved", "from", cur, "to", next)
	h.Focus(h.editors[next])
}

func (h *Host) updateTextInput() {
	active := h.Focused() != nil
	if active == h.capturing {
		return
	}
	h.capturing = active
	h.log.V(1).Info("text input capture", "enabled", active)
	if h.textInput != nil {
		h.textInput(active)
	}
}
