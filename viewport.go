package textedit

// Viewport is the scroll position of an editor.
// Single-line editors scroll horizontally by rune offset, multi-line
// editors vertically by visual line index. The unused field stays 0.
type Viewport struct {
	TextStart int // first visible rune (single-line)
	LineStart int // first visible visual line (multi-line)
}

// scrollText returns the first visible rune offset for a single-line editor
// showing width units of text, such that the caret at cursor is visible.
//
// If the cursor lies before start the view snaps to it; if it lies past the
// right edge start advances rune by rune until it fits. When a selection
// starts before the resulting start, the view scrolls back as far as it can
// toward selStart while keeping the cursor visible. Finally start is pulled
// back so no empty space is shown after the end of the text.
func scrollText(text []rune, start, cursor, selStart int, hasSel bool, width float32, widths *widthCache) int {
	n := len(text)
	cursor = clampInt(cursor, 0, n)
	start = clampInt(start, 0, n)

	if cursor < start {
		start = cursor
	} else {
		w := widths.span(text, start, cursor)
		for start < cursor && w > width {
			w -= widths.runeWidth(text[start])
			start++
		}
	}

	if hasSel && selStart < start {
		lo := cursor
		var w float32
		for lo > 0 && w+widths.runeWidth(text[lo-1]) <= width {
			lo--
			w += widths.runeWidth(text[lo])
		}
		if s := max(selStart, lo); s < start {
			start = s
		}
	}

	maxStart := n
	var tail float32
	for maxStart > 0 && tail+widths.runeWidth(text[maxStart-1]) <= width {
		maxStart--
		tail += widths.runeWidth(text[maxStart])
	}
	return min(start, maxStart)
}

// scrollLines returns the first visible line index for a multi-line editor
// showing visible lines, such that cursorLine is on screen. The rules mirror
// scrollText with lines in place of runes. The result lies in
// [0, max(0, numLines-visible)].
func scrollLines(numLines, start, cursorLine, selLine int, hasSel bool, visible int) int {
	visible = max(visible, 1)

	if cursorLine < start {
		start = cursorLine
	} else if cursorLine >= start+visible {
		start = cursorLine - visible + 1
	}

	if hasSel && selLine < start {
		lo := max(0, cursorLine-visible+1)
		if s := max(selLine, lo); s < start {
			start = s
		}
	}

	return clampInt(start, 0, max(0, numLines-visible))
}
