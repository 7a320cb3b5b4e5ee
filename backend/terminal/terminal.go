// Package terminal runs textedit editors in a terminal using tcell.
//
// Editors are laid out in cells: use textedit.CellMetrics, a scale of 1 and
// bounds measured in columns and rows.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/go-theft-auto/textedit"
)

const trackedButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Terminal converts tcell events into textedit events and draws editors.
type Terminal struct {
	screen    tcell.Screen
	buttons   tcell.ButtonMask
	textInput bool
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Open creates and initializes a screen on the controlling terminal with
// mouse reporting enabled.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return New(screen), nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// SetTextInput enables or disables delivery of typed characters. Use it as
// a textedit.TextInputHandler.
func (t *Terminal) SetTextInput(enabled bool) { t.textInput = enabled }

// ConvertEvent translates one tcell event. It returns nil for events editors
// do not consume (resize, focus, wheel, typed runes while text input is off).
func (t *Terminal) ConvertEvent(ev tcell.Event) []textedit.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.convertKey(e)
	case *tcell.EventMouse:
		return t.convertMouse(e)
	default:
		return nil
	}
}

func (t *Terminal) convertKey(e *tcell.EventKey) []textedit.Event {
	mods := convertMod(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		if !t.textInput {
			return nil
		}
		return []textedit.Event{textedit.TextInput(string(e.Rune()))}
	case tcell.KeyCtrlA:
		return []textedit.Event{textedit.KeyPress(textedit.KeyA, mods|textedit.ModCtrl)}
	case tcell.KeyCtrlC:
		return []textedit.Event{textedit.KeyPress(textedit.KeyC, mods|textedit.ModCtrl)}
	case tcell.KeyCtrlV:
		return []textedit.Event{textedit.KeyPress(textedit.KeyV, mods|textedit.ModCtrl)}
	case tcell.KeyCtrlX:
		return []textedit.Event{textedit.KeyPress(textedit.KeyX, mods|textedit.ModCtrl)}
	case tcell.KeyBacktab:
		return []textedit.Event{textedit.KeyPress(textedit.KeyTab, mods|textedit.ModShift)}
	}

	k := convertKey(e.Key())
	if k == textedit.KeyNone {
		return nil
	}
	return []textedit.Event{textedit.KeyPress(k, mods)}
}

// convertMouse synthesizes press, release and motion events by comparing
// the held buttons with the previous mouse event.
func (t *Terminal) convertMouse(e *tcell.EventMouse) []textedit.Event {
	cx, cy := e.Position()
	x, y := float32(cx), float32(cy)
	held := e.Buttons() & trackedButtons
	mods := convertMod(e.Modifiers())

	pressed := held &^ t.buttons
	released := t.buttons &^ held
	t.buttons = held

	mask := convertButtons(held)
	var out []textedit.Event
	for _, b := range []tcell.ButtonMask{tcell.ButtonPrimary, tcell.ButtonSecondary, tcell.ButtonMiddle} {
		if released&b != 0 {
			ev := textedit.PointerUp(x, y, convertButton(b))
			ev.Buttons = mask
			out = append(out, ev)
		}
		if pressed&b != 0 {
			ev := textedit.PointerDown(x, y, convertButton(b))
			ev.Buttons = mask
			ev.Mods = mods
			out = append(out, ev)
		}
	}
	if pressed == 0 && released == 0 {
		out = append(out, textedit.PointerMove(x, y, mask))
	}
	return out
}

// Draw renders every editor of h and places the terminal cursor on the
// focused one. Call Screen().Show() afterwards.
func (t *Terminal) Draw(h *textedit.Host) {
	t.screen.HideCursor()
	style := h.Style()
	for _, e := range h.Editors() {
		m := e.RenderModel()
		DrawModel(t.screen, m, style)
		if m.CursorVisible {
			t.screen.ShowCursor(int(m.Cursor.X), int(m.Cursor.Y))
		}
	}
}

// DrawModel paints one editor's render model onto screen.
func DrawModel(screen tcell.Screen, m textedit.RenderModel, style textedit.Style) {
	bgColor := style.BgColor
	if m.Active {
		bgColor = style.ActiveBgColor
	}
	bg := tcell.StyleDefault.Background(color(bgColor))
	textStyle := bg.Foreground(color(style.TextColor))
	if m.Placeholder {
		textStyle = bg.Foreground(color(style.PlaceholderColor))
	}

	b := m.Bounds
	x0, y0 := int(b.X), int(b.Y)
	x1, y1 := int(b.X+b.W), int(b.Y+b.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	in := m.Inner
	right := int(in.X + in.W)
	for _, line := range m.Lines {
		x, y := int(line.X), int(line.Y)
		for _, r := range line.Text {
			w := uniseg.StringWidth(string(r))
			if x+w > right {
				break
			}
			st := textStyle
			if selected(m.Selection, x, y) {
				st = st.Reverse(true)
			}
			screen.SetContent(x, y, r, nil, st)
			x += max(w, 1)
		}
	}

	// selection past the end of a line
	for _, r := range m.Selection {
		y := int(r.Y)
		for x := int(r.X); x < int(r.X+r.W) && x < right; x++ {
			mainc, combc, st, _ := screen.GetContent(x, y)
			if mainc == ' ' {
				screen.SetContent(x, y, mainc, combc, st.Reverse(true))
			}
		}
	}
}

func selected(rects []textedit.Rect, x, y int) bool {
	p := textedit.Vec2{X: float32(x), Y: float32(y)}
	for _, r := range rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func color(c uint32) tcell.Color {
	r, g, b, _ := textedit.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func convertMod(m tcell.ModMask) textedit.Modifier {
	var out textedit.Modifier
	if m&tcell.ModShift != 0 {
		out |= textedit.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= textedit.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= textedit.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= textedit.ModSuper
	}
	return out
}

func convertKey(k tcell.Key) textedit.Key {
	switch k {
	case tcell.KeyTab:
		return textedit.KeyTab
	case tcell.KeyLeft:
		return textedit.KeyLeft
	case tcell.KeyRight:
		return textedit.KeyRight
	case tcell.KeyUp:
		return textedit.KeyUp
	case tcell.KeyDown:
		return textedit.KeyDown
	case tcell.KeyPgUp:
		return textedit.KeyPageUp
	case tcell.KeyPgDn:
		return textedit.KeyPageDown
	case tcell.KeyHome:
		return textedit.KeyHome
	case tcell.KeyEnd:
		return textedit.KeyEnd
	case tcell.KeyDelete:
		return textedit.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return textedit.KeyBackspace
	case tcell.KeyEnter:
		return textedit.KeyEnter
	case tcell.KeyEscape:
		return textedit.KeyEscape
	default:
		return textedit.KeyNone
	}
}

func convertButton(b tcell.ButtonMask) textedit.MouseButton {
	switch b {
	case tcell.ButtonSecondary:
		return textedit.MouseButtonRight
	case tcell.ButtonMiddle:
		return textedit.MouseButtonMiddle
	default:
		return textedit.MouseButtonLeft
	}
}

func convertButtons(held tcell.ButtonMask) textedit.ButtonMask {
	var m textedit.ButtonMask
	if held&tcell.ButtonPrimary != 0 {
		m = m.With(textedit.MouseButtonLeft)
	}
	if held&tcell.ButtonSecondary != 0 {
		m = m.With(textedit.MouseButtonRight)
	}
	if held&tcell.ButtonMiddle != 0 {
		m = m.With(textedit.MouseButtonMiddle)
	}
	return m
}
