package textedit

// VisibleLine is one line of text to draw at (X, Y), its top-left corner.
// Start is the buffer offset of the first rune of Text.
type VisibleLine struct {
	Text  string
	X, Y  float32
	Start int
}

// RenderModel is everything a renderer needs to draw an editor.
// Coordinates are logical units; multiply by Scale for device pixels.
type RenderModel struct {
	Bounds Rect
	Inner  Rect

	Lines []VisibleLine

	Cursor        Rect
	CursorVisible bool
	Selection     []Rect

	// Placeholder is true when Lines holds the placeholder instead of content.
	Placeholder bool
	Active      bool

	LineHeight float32
	Scale      float32
}

// RenderModel returns the drawable state of the editor. It performs no
// drawing and does not change the editor.
func (e *Editor) RenderModel() RenderModel {
	in := e.inner()
	lh := e.widths.lineHeight()
	m := RenderModel{
		Bounds:     e.bounds,
		Inner:      in,
		Active:     e.Active(),
		LineHeight: lh,
		Scale:      e.scale,
	}

	if e.buf.Len() == 0 && !e.Active() && e.placeholder != "" {
		m.Placeholder = true
		m.Lines = []VisibleLine{{Text: e.placeholder, X: in.X, Y: e.textTop(in, lh)}}
		return m
	}

	if e.mode == ModeSingleLine {
		e.singleLineModel(&m, in, lh)
	} else {
		e.multiLineModel(&m, in, lh)
	}
	return m
}

// textTop returns the top of the first line; single-line text is centred
// vertically in the inner rectangle.
func (e *Editor) textTop(in Rect, lh float32) float32 {
	if e.mode == ModeSingleLine {
		return in.Y + maxf(0, (in.H-lh)/2)
	}
	return in.Y
}

func (e *Editor) singleLineModel(m *RenderModel, in Rect, lh float32) {
	text := e.buf.Runes()
	y := e.textTop(in, lh)
	start := e.view.TextStart

	// runes that fit entirely
	end := start
	var w float32
	for end < len(text) {
		rw := e.widths.runeWidth(text[end])
		if w+rw > in.W {
			break
		}
		w += rw
		end++
	}
	m.Lines = []VisibleLine{{Text: string(text[start:end]), X: in.X, Y: y, Start: start}}

	if selStart, selEnd, ok := e.sel.SelectedRange(); ok {
		a := max(selStart, start)
		b := min(selEnd, end)
		if a < b {
			x0 := in.X + e.widths.span(text, start, a)
			x1 := in.X + e.widths.span(text, start, b)
			m.Selection = append(m.Selection, Rect{X: x0, Y: y, W: x1 - x0, H: lh})
		}
	}

	if e.Active() {
		cur := e.sel.Cursor()
		m.Cursor = Rect{X: in.X + e.widths.span(text, start, cur), Y: y, W: 1, H: lh}
		m.CursorVisible = true
	}
}

func (e *Editor) multiLineModel(m *RenderModel, in Rect, lh float32) {
	text := e.buf.Runes()
	lines := e.visualLines()
	first := e.view.LineStart
	last := min(len(lines), first+e.visibleLineCount())

	selStart, selEnd, hasSel := e.sel.SelectedRange()
	spaceW := e.widths.runeWidth(' ')

	for i := first; i < last; i++ {
		line := lines[i]
		y := in.Y + float32(i-first)*lh
		m.Lines = append(m.Lines, VisibleLine{
			Text:  string(text[line.Start:line.End()]),
			X:     in.X,
			Y:     y,
			Start: line.Start,
		})

		if !hasSel || selEnd <= line.Start || selStart > line.End() {
			continue
		}
		// a soft break consumes nothing, so its end offset belongs to the next line
		if line.Break == BreakSoft && selStart >= line.End() {
			continue
		}
		a := max(selStart, line.Start)
		b := min(selEnd, line.End())
		x0 := in.X + e.widths.span(text, line.Start, a)
		x1 := in.X + e.widths.span(text, line.Start, b)
		// selection continues past the end of this line
		if selEnd > line.End() && (line.Break == BreakNewline || line.Break == BreakSpace) {
			x1 += spaceW
		}
		if x1 > x0 {
			m.Selection = append(m.Selection, Rect{X: x0, Y: y, W: x1 - x0, H: lh})
		}
	}

	if e.Active() {
		cur := e.sel.Cursor()
		li := LineIndex(lines, cur)
		if li >= first && li < last {
			line := lines[li]
			m.Cursor = Rect{
				X: in.X + e.widths.span(text, line.Start, cur),
				Y: in.Y + float32(li-first)*lh,
				W: 1,
				H: lh,
			}
			m.CursorVisible = true
		}
	}
}
