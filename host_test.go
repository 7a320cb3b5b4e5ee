package textedit_test

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/textedit"
)

// mockRenderer is a test renderer that records what it was given.
type mockRenderer struct {
	renderCalls int
	vertices    int
	commands    int
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *textedit.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.commands = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

// newHostPair creates a host with two stacked editors, a at y=0 and b at y=20.
func newHostPair(t *testing.T, opts ...textedit.HostOption) (h *textedit.Host, a, b *textedit.Editor) {
	t.Helper()
	editorOpts := []textedit.EditorOption{textedit.WithMetrics(tenPx), textedit.WithPadding(0)}
	a = textedit.NewEditor(textedit.Rect{W: 100}, editorOpts...)
	b = textedit.NewEditor(textedit.Rect{Y: 20, W: 100}, editorOpts...)
	h = textedit.NewHost(opts...)
	h.Add(a, b)
	return h, a, b
}

func TestHostClickFocus(t *testing.T) {
	var capture []bool
	h, a, b := newHostPair(t, textedit.WithTextInputHandler(func(on bool) {
		capture = append(capture, on)
	}))

	h.Dispatch(textedit.PointerDown(5, 5, textedit.MouseButtonLeft))
	h.Dispatch(textedit.PointerUp(5, 5, textedit.MouseButtonLeft))
	if h.Focused() != a {
		t.Fatal("click on a did not focus it")
	}

	h.Dispatch(textedit.PointerDown(5, 25, textedit.MouseButtonLeft))
	if a.Active() || !b.Active() {
		t.Errorf("after clicking b: a.Active=%v b.Active=%v", a.Active(), b.Active())
	}
	if !h.TextInputActive() {
		t.Error("TextInputActive() = false with b focused")
	}

	h.Dispatch(textedit.PointerDown(500, 500, textedit.MouseButtonLeft))
	if h.Focused() != nil {
		t.Error("click outside kept focus")
	}
	if h.TextInputActive() {
		t.Error("TextInputActive() = true with nothing focused")
	}

	if len(capture) != 2 || !capture[0] || capture[1] {
		t.Errorf("text input handler calls = %v, want [true false]", capture)
	}
}

func TestHostRightClickKeepsFocus(t *testing.T) {
	h, a, b := newHostPair(t)
	h.Focus(a)

	h.Dispatch(textedit.PointerDown(5, 25, textedit.MouseButtonRight))
	if h.Focused() != a {
		t.Errorf("right click on b moved focus to %p, want a", h.Focused())
	}
	if b.Active() {
		t.Error("right click activated b")
	}
	if !h.TextInputActive() {
		t.Error("TextInputActive() = false with a still focused")
	}
}

func TestHostTextGoesToFocusedEditor(t *testing.T) {
	h, a, b := newHostPair(t)
	h.Focus(b)

	if !h.Dispatch(textedit.TextInput("x")) {
		t.Error("Dispatch reported no change")
	}
	if a.Text() != "" || b.Text() != "x" {
		t.Errorf("a=%q b=%q, want \"\" and \"x\"", a.Text(), b.Text())
	}

	h.Focus(nil)
	if h.Dispatch(textedit.TextInput("y")) {
		t.Error("text with nothing focused changed something")
	}
}

func TestHostTabCyclesFocus(t *testing.T) {
	h, a, b := newHostPair(t)
	tab := textedit.KeyPress(textedit.KeyTab, 0)
	backTab := textedit.KeyPress(textedit.KeyTab, textedit.ModShift)

	steps := []struct {
		ev   textedit.Event
		want *textedit.Editor
	}{
		{tab, a},
		{tab, b},
		{tab, a},
		{backTab, b},
		{backTab, a},
	}
	for i, s := range steps {
		h.Dispatch(s.ev)
		if got := h.Focused(); got != s.want {
			t.Errorf("step %d: wrong editor focused", i)
		}
		if a.Active() && b.Active() {
			t.Fatalf("step %d: two editors active", i)
		}
	}

	h.Focus(nil)
	h.Dispatch(backTab)
	if h.Focused() != b {
		t.Error("shift+tab with nothing focused should focus the last editor")
	}
}

func TestHostAddKeepsSingleFocus(t *testing.T) {
	a := textedit.NewEditor(textedit.Rect{W: 100})
	b := textedit.NewEditor(textedit.Rect{W: 100})
	a.SetActive(true)
	b.SetActive(true)

	h := textedit.NewHost()
	h.Add(a, b, a, nil)
	if len(h.Editors()) != 2 {
		t.Errorf("len(Editors()) = %d, want 2", len(h.Editors()))
	}
	if !a.Active() || b.Active() {
		t.Errorf("a.Active=%v b.Active=%v, want only a", a.Active(), b.Active())
	}

	h.Remove(a)
	if h.Focused() != nil || h.TextInputActive() {
		t.Error("removing the focused editor left focus behind")
	}
}

func TestHostOverlapPicksTopmost(t *testing.T) {
	below := textedit.NewEditor(textedit.Rect{W: 100, H: 40})
	above := textedit.NewEditor(textedit.Rect{X: 50, W: 100, H: 40})
	h := textedit.NewHost()
	h.Add(below, above)

	h.Dispatch(textedit.PointerDown(75, 10, textedit.MouseButtonLeft))
	if h.Focused() != above {
		t.Error("press on the overlap should focus the later editor")
	}
}

func TestHostScale(t *testing.T) {
	h, a, _ := newHostPair(t)
	h.SetScale(2)
	if a.Scale() != 2 {
		t.Fatalf("Scale() = %v, want 2", a.Scale())
	}
	h.Dispatch(textedit.PointerDown(190, 5, textedit.MouseButtonLeft))
	if h.Focused() != a {
		t.Error("scaled press did not reach a")
	}
}

func TestHostRender(t *testing.T) {
	renderer := &mockRenderer{}
	atlas := textedit.NewGlyphAtlas(basicfont.Face7x13)
	h, a, _ := newHostPair(t, textedit.WithRenderer(renderer, atlas), textedit.WithStyle(textedit.GTAStyle()))
	_ = a.SetText("hi")

	if err := h.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want 1", renderer.renderCalls)
	}
	if renderer.vertices == 0 || renderer.commands == 0 {
		t.Errorf("empty draw data: %d vertices, %d commands", renderer.vertices, renderer.commands)
	}

	h.Resize(640, 480)
	if renderer.width != 640 || renderer.height != 480 {
		t.Errorf("Resize not forwarded: %dx%d", renderer.width, renderer.height)
	}

	if err := textedit.NewHost().Render(); err != nil {
		t.Errorf("Render() without renderer = %v", err)
	}
}
