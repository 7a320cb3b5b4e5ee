package textedit

import "unicode"

type runeClass uint8

const (
	classSpace runeClass = iota
	classPunct
	classWord
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
		return classWord
	default:
		return classPunct
	}
}

// wordLeft returns the start of the word to the left of pos.
// Whitespace directly before pos is skipped first.
func wordLeft(text []rune, pos int) int {
	pos = clampInt(pos, 0, len(text))
	for pos > 0 && classify(text[pos-1]) == classSpace {
		pos--
	}
	if pos == 0 {
		return 0
	}
	c := classify(text[pos-1])
	for pos > 0 && classify(text[pos-1]) == c {
		pos--
	}
	return pos
}

// wordRight returns the start of the next word to the right of pos:
// the rest of the current word is skipped, then any whitespace.
func wordRight(text []rune, pos int) int {
	n := len(text)
	pos = clampInt(pos, 0, n)
	if pos < n {
		if c := classify(text[pos]); c != classSpace {
			for pos < n && classify(text[pos]) == c {
				pos++
			}
		}
	}
	for pos < n && classify(text[pos]) == classSpace {
		pos++
	}
	return pos
}
