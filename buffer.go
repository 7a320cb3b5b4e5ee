package textedit

import "fmt"

// DefaultMaxLength is the capacity used when an editor is created without
// an explicit maximum length.
const DefaultMaxLength = 1024

// TextBuffer is a bounded rune sequence.
// Offsets are rune indices, never byte indices.
// Len() <= MaxLength() holds after every operation.
type TextBuffer struct {
	runes     []rune
	maxLength int
}

// NewTextBuffer creates an empty buffer holding at most maxLength runes.
// A non-positive maxLength selects DefaultMaxLength.
func NewTextBuffer(maxLength int) *TextBuffer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &TextBuffer{
		runes:     make([]rune, 0, min(maxLength, 64)),
		maxLength: maxLength,
	}
}

// Len returns the number of runes in the buffer.
func (b *TextBuffer) Len() int { return len(b.runes) }

// MaxLength returns the buffer capacity in runes.
func (b *TextBuffer) MaxLength() int { return b.maxLength }

// String returns the buffer content.
func (b *TextBuffer) String() string { return string(b.runes) }

// Runes exposes the underlying runes. The slice is only valid until the next
// mutation and must not be modified.
func (b *TextBuffer) Runes() []rune { return b.runes }

// Slice returns the text in [start, end), clamped to the buffer.
func (b *TextBuffer) Slice(start, end int) string {
	start, end = b.clampRange(start, end)
	return string(b.runes[start:end])
}

// Insert inserts text at offset.
// Returns ErrInvalidOffset if offset is outside [0, Len()] and
// ErrCapacityExceeded if the result would exceed MaxLength().
func (b *TextBuffer) Insert(offset int, text string) error {
	if offset < 0 || offset > len(b.runes) {
		return fmt.Errorf("insert at %d (len %d): %w", offset, len(b.runes), ErrInvalidOffset)
	}
	return b.insertRunes(offset, []rune(text))
}

// Delete removes the runes in [start, end).
// Returns ErrInvalidOffset if the range is reversed or out of bounds.
func (b *TextBuffer) Delete(start, end int) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	b.deleteRange(start, end)
	return nil
}

// Replace deletes [start, end) and inserts text in its place.
// Either both steps happen or neither: if the insert would not fit, the
// buffer is left unchanged and ErrCapacityExceeded is returned.
func (b *TextBuffer) Replace(start, end int, text string) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	ins := []rune(text)
	if len(b.runes)-(end-start)+len(ins) > b.maxLength {
		return fmt.Errorf("replace [%d,%d) with %d runes: %w", start, end, len(ins), ErrCapacityExceeded)
	}
	b.deleteRange(start, end)
	return b.insertRunes(start, ins)
}

// SetText replaces the entire content.
// Text longer than MaxLength() is rejected and the buffer is left unchanged.
func (b *TextBuffer) SetText(text string) error {
	r := []rune(text)
	if len(r) > b.maxLength {
		return fmt.Errorf("set text of %d runes (max %d): %w", len(r), b.maxLength, ErrCapacityExceeded)
	}
	b.runes = append(b.runes[:0], r...)
	return nil
}

// Fits reports whether n more runes can be inserted.
func (b *TextBuffer) Fits(n int) bool {
	return len(b.runes)+n <= b.maxLength
}

func (b *TextBuffer) insertRunes(offset int, ins []rune) error {
	if len(ins) == 0 {
		return nil
	}
	if !b.Fits(len(ins)) {
		return fmt.Errorf("insert %d runes (len %d, max %d): %w", len(ins), len(b.runes), b.maxLength, ErrCapacityExceeded)
	}
	b.runes = append(b.runes, ins...)
	copy(b.runes[offset+len(ins):], b.runes[offset:len(b.runes)-len(ins)])
	copy(b.runes[offset:], ins)
	return nil
}

// insertClamped is the internal insert path: the offset is clamped rather
// than rejected. Capacity is still enforced.
func (b *TextBuffer) insertClamped(offset int, ins []rune) error {
	return b.insertRunes(clampInt(offset, 0, len(b.runes)), ins)
}

// deleteClamped removes [start, end) after clamping both ends, returning the
// number of runes removed.
func (b *TextBuffer) deleteClamped(start, end int) int {
	start, end = b.clampRange(start, end)
	b.deleteRange(start, end)
	return end - start
}

func (b *TextBuffer) deleteRange(start, end int) {
	if start >= end {
		return
	}
	b.runes = append(b.runes[:start], b.runes[end:]...)
}

func (b *TextBuffer) checkRange(start, end int) error {
	if start < 0 || end > len(b.runes) || start > end {
		return fmt.Errorf("range [%d,%d) (len %d): %w", start, end, len(b.runes), ErrInvalidOffset)
	}
	return nil
}

func (b *TextBuffer) clampRange(start, end int) (int, int) {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, 0, len(b.runes))
	if start > end {
		start, end = end, start
	}
	return start, end
}
