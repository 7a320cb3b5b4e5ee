package textedit

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-logr/logr"
)

// State is the focus state of an editor.
type State int

const (
	StateInactive State = iota
	StateActive
	// StateActiveSelecting is a drag selection in progress.
	StateActiveSelecting
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateActiveSelecting:
		return "selecting"
	default:
		return "inactive"
	}
}

// Editor is a text input widget: a bounded buffer with a cursor, selection,
// wrapping (multi-line) and scrolling, driven by normalized input events.
//
// An Editor is not safe for concurrent use. All methods run to completion
// without blocking.
type Editor struct {
	mode        Mode
	maxLength   int
	initial     string
	bounds      Rect
	padding     float32
	scale       float32
	font        FontDescriptor
	placeholder string

	metrics   MetricsProvider
	clipboard ClipboardProvider
	log       logr.Logger
	onCommit  func(string)
	onChange  func(string)

	buf   *TextBuffer
	sel   *Selection
	state State
	view  Viewport

	widths     *widthCache
	lines      []VisualLine
	linesValid bool
}

// NewEditor creates an inactive editor occupying bounds (logical units).
// A single-line editor with zero height gets one line of text plus padding.
func NewEditor(bounds Rect, opts ...EditorOption) *Editor {
	e := &Editor{
		bounds:    bounds,
		padding:   4,
		scale:     1,
		metrics:   DefaultMetrics(),
		clipboard: NewMemoryClipboard(),
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = NewTextBuffer(e.maxLength)
	e.sel = NewSelection(e.buf)
	e.widths = newWidthCache(e.metrics, e.font)

	if e.mode == ModeSingleLine && e.bounds.H <= 0 {
		e.bounds.H = e.widths.lineHeight() + 2*e.padding
	}
	if e.initial != "" {
		r := e.sanitize(e.initial)
		_ = e.buf.SetText(string(r[:min(len(r), e.buf.MaxLength())]))
		e.sel.MoveTo(e.buf.Len(), false)
	}
	e.initial = ""
	e.sync()
	return e
}

// Mode returns the editing mode.
func (e *Editor) Mode() Mode { return e.mode }

// Text returns the content.
func (e *Editor) Text() string { return e.buf.String() }

// Len returns the content length in runes.
func (e *Editor) Len() int { return e.buf.Len() }

// MaxLength returns the capacity in runes.
func (e *Editor) MaxLength() int { return e.buf.MaxLength() }

// SetText replaces the content, clears the selection and moves the cursor to
// the end. Newlines become spaces in single-line mode. Returns
// ErrCapacityExceeded, leaving the content unchanged, if text is too long.
func (e *Editor) SetText(text string) error {
	if err := e.buf.SetText(string(e.sanitize(text))); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	e.sel.MoveTo(e.buf.Len(), false)
	e.invalidate()
	e.sync()
	return nil
}

// InsertText inserts text at the cursor as if typed, replacing the selection.
// Unlike typed input it works while inactive and reports rejected inserts.
func (e *Editor) InsertText(text string) error {
	_, err := e.insert(text)
	e.sync()
	return err
}

// State returns the focus state.
func (e *Editor) State() State { return e.state }

// Active returns true if the editor has focus.
func (e *Editor) Active() bool { return e.state != StateInactive }

// SetActive gives or takes focus. Losing focus clears the selection.
func (e *Editor) SetActive(active bool) {
	switch {
	case active && e.state == StateInactive:
		e.state = StateActive
		e.log.V(1).Info("editor activated")
	case !active && e.state != StateInactive:
		e.deactivate()
	}
	e.sync()
}

// Cursor returns the cursor offset.
func (e *Editor) Cursor() int { return e.sel.Cursor() }

// SetCursor moves the cursor, clearing the selection. The offset is clamped.
func (e *Editor) SetCursor(offset int) {
	e.sel.MoveTo(offset, false)
	e.sync()
}

// Selection returns the selected range [start, end).
// ok is false when nothing is selected.
func (e *Editor) Selection() (start, end int, ok bool) { return e.sel.SelectedRange() }

// Select selects [anchor, cursor); the cursor ends up at cursor.
func (e *Editor) Select(anchor, cursor int) {
	e.sel.MoveTo(anchor, false)
	e.sel.MoveTo(cursor, true)
	e.sync()
}

// SelectedText returns the selected substring, or "" if nothing is selected.
func (e *Editor) SelectedText() string {
	start, end, ok := e.sel.SelectedRange()
	if !ok {
		return ""
	}
	return e.buf.Slice(start, end)
}

// Viewport returns the scroll position.
func (e *Editor) Viewport() Viewport { return e.view }

// Lines returns the visual lines of the content. Single-line editors always
// have exactly one line. The slice must not be modified.
func (e *Editor) Lines() []VisualLine { return e.visualLines() }

// Bounds returns the editor rectangle in logical units.
func (e *Editor) Bounds() Rect { return e.bounds }

// SetBounds moves or resizes the editor.
func (e *Editor) SetBounds(r Rect) {
	if r == e.bounds {
		return
	}
	if e.mode == ModeSingleLine && r.H <= 0 {
		r.H = e.widths.lineHeight() + 2*e.padding
	}
	e.bounds = r
	e.invalidate()
	e.sync()
}

// Contains reports whether the logical point p lies within the editor.
func (e *Editor) Contains(p Vec2) bool { return e.bounds.Contains(p) }

// Scale returns the device pixel scale factor.
func (e *Editor) Scale() float32 { return e.scale }

// SetScale sets the device pixel scale factor. Non-positive values are ignored.
func (e *Editor) SetScale(s float32) {
	if s > 0 {
		e.scale = s
	}
}

// SetFont changes the font and re-lays out the content.
func (e *Editor) SetFont(f FontDescriptor) {
	e.font = f
	e.widths = newWidthCache(e.metrics, f)
	e.invalidate()
	e.sync()
}

// SetMetrics changes the metrics provider and re-lays out the content.
func (e *Editor) SetMetrics(m MetricsProvider) {
	if m == nil {
		return
	}
	e.metrics = m
	e.widths = newWidthCache(m, e.font)
	e.invalidate()
	e.sync()
}

// HandleEvent processes one input event. It returns true if the content
// changed.
func (e *Editor) HandleEvent(ev Event) bool {
	if e.log.V(2).Enabled() {
		e.log.V(2).Info("event", "event", ev.String(), "state", e.state.String())
	}

	var changed bool
	switch ev.Type {
	case EventPointerDown:
		e.pointerDown(ev)
	case EventPointerMove:
		e.pointerMove(ev)
	case EventPointerUp:
		if e.state == StateActiveSelecting {
			e.state = StateActive
		}
	case EventTextInput:
		if e.Active() {
			changed, _ = e.insert(ev.Text)
		}
	case EventKeyDown:
		if e.Active() {
			changed = e.key(ev.Key, ev.Mods)
		}
	case EventCommand:
		if e.Active() {
			changed = e.command(ev.Command)
		}
	}

	e.sync()
	if changed && e.onChange != nil {
		e.onChange(e.buf.String())
	}
	return changed
}

func (e *Editor) pointerDown(ev Event) {
	p := Vec2{X: ev.X / e.scale, Y: ev.Y / e.scale}
	if !e.bounds.Contains(p) {
		if e.Active() {
			e.deactivate()
		}
		return
	}
	if ev.Button != MouseButtonLeft {
		return
	}
	extend := ev.Mods.Has(ModShift) && e.Active()
	if e.state == StateInactive {
		e.log.V(1).Info("editor activated", "by", "pointer")
	}
	e.state = StateActiveSelecting
	e.sel.MoveTo(e.hitTest(p, false), extend)
}

func (e *Editor) pointerMove(ev Event) {
	if e.state != StateActiveSelecting {
		return
	}
	if !ev.Buttons.Has(MouseButtonLeft) {
		// release happened somewhere we did not see it
		e.state = StateActive
		return
	}
	p := Vec2{X: ev.X / e.scale, Y: ev.Y / e.scale}
	e.sel.MoveTo(e.hitTest(p, true), true)
}

func (e *Editor) deactivate() {
	e.state = StateInactive
	e.sel.ClearSelection()
	e.log.V(1).Info("editor deactivated")
}

func (e *Editor) commit() {
	e.deactivate()
	if e.onCommit != nil {
		e.onCommit(e.buf.String())
	}
}

// insert replaces the selection with text at the cursor. The selection is
// removed even if the text does not fit.
func (e *Editor) insert(text string) (changed bool, err error) {
	runes := e.sanitize(text)
	changed = e.sel.DeleteSelection()
	if len(runes) > 0 {
		cur := e.sel.Cursor()
		if err = e.buf.insertClamped(cur, runes); err != nil {
			e.log.V(1).Info("insert rejected", "runes", len(runes), "err", err.Error())
		} else {
			e.sel.MoveTo(cur+len(runes), false)
			changed = true
		}
	}
	if changed {
		e.invalidate()
	}
	return changed, err
}

// deleteRange removes [start, end) and leaves the cursor at start.
func (e *Editor) deleteRange(start, end int) bool {
	if e.buf.deleteClamped(start, end) == 0 {
		return false
	}
	e.sel.MoveTo(min(start, end), false)
	e.invalidate()
	return true
}

// sanitize drops control characters other than newline and tab and
// normalises line endings. Single-line editors get spaces for newlines.
func (e *Editor) sanitize(text string) []rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r == '\r':
			r = '\n'
		case r < 32 && r != '\n' && r != '\t', r == 0x7f:
			continue
		}
		if r == '\n' && e.mode == ModeSingleLine {
			r = ' '
		}
		out = append(out, r)
	}
	return out
}

func (e *Editor) invalidate() {
	e.linesValid = false
}

func (e *Editor) inner() Rect {
	return e.bounds.Inset(e.padding)
}

func (e *Editor) wrapWidth() float32 {
	if e.mode == ModeSingleLine {
		return 0
	}
	return e.inner().W
}

func (e *Editor) visualLines() []VisualLine {
	if !e.linesValid {
		e.lines = wrapLines(e.buf.Runes(), e.wrapWidth(), e.widths)
		e.linesValid = true
	}
	return e.lines
}

// visibleLineCount returns how many whole lines fit the inner height, at
// least one.
func (e *Editor) visibleLineCount() int {
	lh := e.widths.lineHeight()
	if lh <= 0 {
		return 1
	}
	return max(1, int(math.Floor(float64(e.inner().H/lh))))
}

// sync re-clamps the selection and scrolls the cursor into view.
func (e *Editor) sync() {
	e.sel.Clamp()
	selStart, _, hasSel := e.sel.SelectedRange()

	if e.mode == ModeSingleLine {
		e.view.TextStart = scrollText(e.buf.Runes(), e.view.TextStart, e.sel.Cursor(),
			selStart, hasSel, e.inner().W, e.widths)
		return
	}

	lines := e.visualLines()
	e.view.LineStart = scrollLines(len(lines), e.view.LineStart,
		LineIndex(lines, e.sel.Cursor()), LineIndex(lines, selStart), hasSel,
		e.visibleLineCount())
}

// hitTest converts a logical point to the nearest cursor offset. A rune is
// picked when the point lies right of its midpoint. Points outside the text
// area clamp to the nearest line. While dragging left of a scrolled
// single-line editor the offset steps one rune before the view so the view
// follows the pointer.
func (e *Editor) hitTest(p Vec2, dragging bool) int {
	text := e.buf.Runes()
	lines := e.visualLines()
	in := e.inner()
	x := p.X - in.X

	var line VisualLine
	from := 0
	if e.mode == ModeSingleLine {
		line = lines[0]
		from = e.view.TextStart
		if dragging && x < 0 && from > 0 {
			return from - 1
		}
	} else {
		row := e.view.LineStart
		if lh := e.widths.lineHeight(); lh > 0 {
			row += int(math.Floor(float64((p.Y - in.Y) / lh)))
		}
		line = lines[clampInt(row, 0, len(lines)-1)]
		from = line.Start
	}
	return e.offsetInLine(text, line, from, x)
}

// offsetInLine walks line from offset from and returns the boundary closest
// to x, measured from from. The end of a soft-broken line belongs to the next
// line, so it is never returned.
func (e *Editor) offsetInLine(text []rune, line VisualLine, from int, x float32) int {
	off := clampInt(from, line.Start, line.End())
	var cum float32
	for off < line.End() {
		w := e.widths.runeWidth(text[off])
		if cum+w/2 > x {
			break
		}
		cum += w
		off++
	}
	if line.Break == BreakSoft && line.Len > 0 && off == line.End() {
		off--
	}
	return off
}

// lineEnd returns the last cursor position on line.
func lineEnd(line VisualLine) int {
	if line.Break == BreakSoft && line.Len > 0 {
		return line.End() - 1
	}
	return line.End()
}
