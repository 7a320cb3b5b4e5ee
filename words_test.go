package textedit

import "testing"

func TestWordBoundaries(t *testing.T) {
	text := []rune("foo  bar.baz qux")
	//              0123456789012345

	left := []struct{ pos, want int }{
		{16, 13},
		{13, 9}, // skips the space, then "baz"
		{9, 8},  // "." is its own class
		{8, 5},
		{5, 0},
		{0, 0},
	}
	for _, tt := range left {
		if got := wordLeft(text, tt.pos); got != tt.want {
			t.Errorf("wordLeft(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}

	right := []struct{ pos, want int }{
		{0, 5},
		{1, 5},
		{5, 8},
		{8, 9},
		{9, 13},
		{13, 16},
		{16, 16},
	}
	for _, tt := range right {
		if got := wordRight(text, tt.pos); got != tt.want {
			t.Errorf("wordRight(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestWordBoundariesUnicode(t *testing.T) {
	text := []rune("naïve café")
	if got := wordLeft(text, len(text)); got != 6 {
		t.Errorf("wordLeft = %d, want 6", got)
	}
	if got := wordRight(text, 0); got != 6 {
		t.Errorf("wordRight = %d, want 6", got)
	}
}
