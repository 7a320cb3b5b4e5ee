package textedit

// BuildDrawList appends the primitives for one editor to dl: background,
// border, selection, text and caret, scaled to device pixels by m.Scale.
// Text is skipped when atlas is nil.
func BuildDrawList(dl *DrawList, m RenderModel, style Style, atlas *GlyphAtlas) {
	s := m.Scale
	if s <= 0 {
		s = 1
	}
	b := m.Bounds.Scale(s)
	in := m.Inner.Scale(s)

	dl.SetTexture(0)
	dl.AddRect(b.X, b.Y, b.W, b.H, style.background(m.Active))
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, style.border(m.Active), style.BorderWidth*s)

	dl.PushClipRect(in.X, in.Y, in.X+in.W, in.Y+in.H)
	defer dl.PopClipRect()

	for _, r := range m.Selection {
		r = r.Scale(s)
		dl.AddRect(r.X, r.Y, r.W, r.H, style.SelectionColor)
	}

	if atlas != nil && len(m.Lines) > 0 {
		color := style.TextColor
		if m.Placeholder {
			color = style.PlaceholderColor
		}
		// glyph cells are laid out at the line height
		gs := s
		if atlas.CellH > 0 && m.LineHeight > 0 {
			gs = s * m.LineHeight / float32(atlas.CellH)
		}
		dl.SetTexture(atlas.TextureID)
		for _, line := range m.Lines {
			dl.AddText(atlas, line.X*s, line.Y*s, line.Text, color, gs)
		}
		dl.SetTexture(0)
	}

	if m.CursorVisible {
		c := m.Cursor.Scale(s)
		w := style.CursorWidth * s
		if w <= 0 {
			w = c.W
		}
		dl.AddRect(c.X, c.Y, w, c.H, style.CursorColor)
	}
}
