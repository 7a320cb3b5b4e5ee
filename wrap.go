package textedit

import (
	"sort"
	"unicode"
)

// BreakKind records what ends a visual line.
type BreakKind uint8

const (
	// BreakEnd marks the last line of the buffer.
	BreakEnd BreakKind = iota
	// BreakNewline marks a line ended by an explicit '\n', which the line consumes.
	BreakNewline
	// BreakSpace marks a word-wrapped line ended at a whitespace rune, which the line consumes.
	BreakSpace
	// BreakSoft marks a forced mid-word break. Nothing is consumed.
	BreakSoft
)

// String returns a short name for the break kind.
func (k BreakKind) String() string {
	switch k {
	case BreakEnd:
		return "end"
	case BreakNewline:
		return "newline"
	case BreakSpace:
		return "space"
	case BreakSoft:
		return "soft"
	default:
		return "unknown"
	}
}

// VisualLine is a slice [Start, Start+Len) of the buffer that fits on one
// rendered line. The separator rune a line consumes (see BreakKind) is not
// part of Len.
type VisualLine struct {
	Start int
	Len   int
	Break BreakKind
}

// End returns the offset just past the line's last visible rune.
func (l VisualLine) End() int { return l.Start + l.Len }

// Next returns the offset where the following line starts.
func (l VisualLine) Next() int {
	switch l.Break {
	case BreakNewline, BreakSpace:
		return l.End() + 1
	default:
		return l.End()
	}
}

// WrapLines partitions text into visual lines no wider than maxWidth.
//
// Text is split on '\n' first. Within a paragraph runes are accumulated while
// the running width plus the next rune's width stays <= maxWidth. On
// overflow the line breaks at the overflowing rune if it is whitespace, else
// at the most recent whitespace after the line start, else right before the
// overflowing rune. The first rune of a line is always accepted, so a rune
// wider than maxWidth still makes progress. Empty paragraphs yield one
// zero-length line.
//
// A non-positive maxWidth disables wrapping; only explicit breaks split lines.
// The result is a pure function of (text, maxWidth, metrics, font).
func WrapLines(text []rune, maxWidth float32, m MetricsProvider, f FontDescriptor) []VisualLine {
	return wrapLines(text, maxWidth, newWidthCache(m, f))
}

func wrapLines(text []rune, maxWidth float32, widths *widthCache) []VisualLine {
	lines := make([]VisualLine, 0, 1+len(text)/32)

	segStart := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		brk := BreakEnd
		if i < len(text) {
			brk = BreakNewline
		}
		lines = wrapSegment(lines, text, segStart, i, brk, maxWidth, widths)
		segStart = i + 1
	}
	return lines
}

// wrapSegment appends the visual lines of the paragraph text[segStart:segEnd].
func wrapSegment(lines []VisualLine, text []rune, segStart, segEnd int, brk BreakKind, maxWidth float32, widths *widthCache) []VisualLine {
	if maxWidth <= 0 {
		return append(lines, VisualLine{Start: segStart, Len: segEnd - segStart, Break: brk})
	}

	pos := segStart
	for {
		lineStart := pos
		lastSpace := -1
		var width float32

		for pos < segEnd {
			w := widths.runeWidth(text[pos])
			if pos > lineStart && width+w > maxWidth {
				break
			}
			width += w
			if isWrapSpace(text[pos]) {
				lastSpace = pos
			}
			pos++
		}

		if pos >= segEnd {
			return append(lines, VisualLine{Start: lineStart, Len: segEnd - lineStart, Break: brk})
		}

		// text[pos] overflows the line.
		switch {
		case isWrapSpace(text[pos]):
			lines = append(lines, VisualLine{Start: lineStart, Len: pos - lineStart, Break: BreakSpace})
			pos++
		case lastSpace > lineStart:
			lines = append(lines, VisualLine{Start: lineStart, Len: lastSpace - lineStart, Break: BreakSpace})
			pos = lastSpace + 1
		default:
			lines = append(lines, VisualLine{Start: lineStart, Len: pos - lineStart, Break: BreakSoft})
		}
	}
}

func isWrapSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// LineIndex returns the index of the visual line holding offset: the last
// line starting at or before it. An offset at a soft break belongs to the
// following line.
func LineIndex(lines []VisualLine, offset int) int {
	if len(lines) == 0 {
		return 0
	}
	i := sort.Search(len(lines), func(i int) bool { return lines[i].Start > offset })
	return max(i-1, 0)
}
