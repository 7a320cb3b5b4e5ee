package textedit

import "testing"

func tenPxWidths() *widthCache {
	return newWidthCache(MonospaceMetrics{CharWidth: 10, CharHeight: 10}, FontDescriptor{})
}

func TestScrollText(t *testing.T) {
	text := []rune("abcdefghijklmnopqrst") // 20 runes, 200 units

	tests := []struct {
		name     string
		start    int
		cursor   int
		selStart int
		hasSel   bool
		want     int
	}{
		{name: "cursor visible", start: 0, cursor: 3, want: 0},
		{name: "cursor at right edge", start: 0, cursor: 5, want: 0},
		{name: "cursor past right edge", start: 0, cursor: 8, want: 3},
		{name: "cursor before start", start: 5, cursor: 3, want: 3},
		{name: "cursor at end", start: 0, cursor: 20, want: 15},
		{name: "no empty space after text", start: 18, cursor: 19, want: 15},
		{name: "selection pulls view back", start: 5, cursor: 9, selStart: 2, hasSel: true, want: 4},
		{name: "selection fully visible", start: 5, cursor: 6, selStart: 3, hasSel: true, want: 3},
		{name: "selection after start", start: 2, cursor: 6, selStart: 4, hasSel: true, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollText(text, tt.start, tt.cursor, tt.selStart, tt.hasSel, 50, tenPxWidths())
			if got != tt.want {
				t.Errorf("scrollText = %d, want %d", got, tt.want)
			}
			if tt.cursor < got {
				t.Errorf("cursor %d left of start %d", tt.cursor, got)
			}
		})
	}
}

func TestScrollTextShortText(t *testing.T) {
	text := []rune("abc")
	if got := scrollText(text, 2, 3, 0, false, 50, tenPxWidths()); got != 0 {
		t.Errorf("scrollText = %d, want 0 for text narrower than the view", got)
	}
	if got := scrollText(nil, 4, 0, 0, false, 50, tenPxWidths()); got != 0 {
		t.Errorf("scrollText on empty text = %d", got)
	}
}

func TestScrollLines(t *testing.T) {
	tests := []struct {
		name                    string
		numLines, start, cursor int
		selLine                 int
		hasSel                  bool
		want                    int
	}{
		{name: "cursor visible", numLines: 10, start: 0, cursor: 2, want: 0},
		{name: "cursor below", numLines: 10, start: 0, cursor: 5, want: 3},
		{name: "cursor above", numLines: 10, start: 6, cursor: 1, want: 1},
		{name: "clamped to last page", numLines: 10, start: 9, cursor: 9, want: 7},
		{name: "fewer lines than visible", numLines: 2, start: 1, cursor: 1, want: 0},
		{name: "selection pulls view back", numLines: 10, start: 5, cursor: 6, selLine: 1, hasSel: true, want: 4},
		{name: "selection already visible", numLines: 10, start: 3, cursor: 4, selLine: 3, hasSel: true, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollLines(tt.numLines, tt.start, tt.cursor, tt.selLine, tt.hasSel, 3)
			if got != tt.want {
				t.Errorf("scrollLines = %d, want %d", got, tt.want)
			}
		})
	}
}
