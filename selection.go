package textedit

// Selection tracks the cursor and the optional selection anchor of a buffer.
// The anchor is the fixed end of a selection and the cursor is the moving end.
// Both offsets stay within [0, Len()] of the bound buffer.
type Selection struct {
	buf       *TextBuffer
	cursor    int
	anchor    int
	hasAnchor bool
}

// NewSelection creates a selection model bound to buf with the cursor at 0.
func NewSelection(buf *TextBuffer) *Selection {
	return &Selection{buf: buf}
}

// Cursor returns the cursor offset.
func (s *Selection) Cursor() int { return s.cursor }

// Anchor returns the anchor offset and whether one is set.
func (s *Selection) Anchor() (int, bool) { return s.anchor, s.hasAnchor }

// MoveTo moves the cursor to offset, clamped to the buffer.
// With extend the anchor is dropped at the old cursor position first (unless
// one already exists); without extend the selection is cleared.
func (s *Selection) MoveTo(offset int, extend bool) {
	if extend {
		if !s.hasAnchor {
			s.anchor = s.cursor
			s.hasAnchor = true
		}
	} else {
		s.hasAnchor = false
	}
	s.cursor = clampInt(offset, 0, s.buf.Len())
}

// SelectAll selects the whole buffer. It does nothing on an empty buffer.
func (s *Selection) SelectAll() {
	n := s.buf.Len()
	if n == 0 {
		return
	}
	s.anchor = 0
	s.hasAnchor = true
	s.cursor = n
}

// ClearSelection drops the anchor, keeping the cursor in place.
func (s *Selection) ClearSelection() {
	s.hasAnchor = false
}

// HasSelection returns true if a non-empty range is selected.
func (s *Selection) HasSelection() bool {
	return s.hasAnchor && s.anchor != s.cursor
}

// SelectedRange returns the selection as [start, end) with start < end.
// ok is false when nothing (or an empty range) is selected.
func (s *Selection) SelectedRange() (start, end int, ok bool) {
	if !s.HasSelection() {
		return 0, 0, false
	}
	if s.anchor < s.cursor {
		return s.anchor, s.cursor, true
	}
	return s.cursor, s.anchor, true
}

// DeleteSelection removes the selected text from the buffer and collapses the
// cursor to the selection start. Returns false if nothing was selected.
func (s *Selection) DeleteSelection() bool {
	start, end, ok := s.SelectedRange()
	s.hasAnchor = false
	if !ok {
		return false
	}
	s.buf.deleteClamped(start, end)
	s.cursor = start
	s.Clamp()
	return true
}

// Clamp pulls the cursor and anchor back into [0, Len()].
// Call after any buffer mutation that was not routed through the selection.
func (s *Selection) Clamp() {
	n := s.buf.Len()
	s.cursor = clampInt(s.cursor, 0, n)
	if s.hasAnchor {
		s.anchor = clampInt(s.anchor, 0, n)
	}
}
