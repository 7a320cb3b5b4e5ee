package textedit_test

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/go-theft-auto/textedit"
)

func TestMonospaceMetrics(t *testing.T) {
	m := textedit.DefaultMetrics()
	if got := m.Measure("héllo", textedit.FontDescriptor{}); got != 40 {
		t.Errorf("Measure = %v, want 40 (runes, not bytes)", got)
	}
	big := textedit.FontDescriptor{Size: 16}
	if got := m.Measure("ab", big); got != 32 {
		t.Errorf("Measure at size 16 = %v, want 32", got)
	}
	if got := m.LineHeight(big); got != 16 {
		t.Errorf("LineHeight at size 16 = %v, want 16", got)
	}
}

func TestCellMetrics(t *testing.T) {
	var m textedit.CellMetrics
	if got := m.Measure("ab", textedit.FontDescriptor{}); got != 2 {
		t.Errorf("Measure(ab) = %v, want 2", got)
	}
	if got := m.Measure("日本", textedit.FontDescriptor{}); got != 4 {
		t.Errorf("Measure(日本) = %v, want 4", got)
	}
	if got := m.LineHeight(textedit.FontDescriptor{}); got != 1 {
		t.Errorf("LineHeight = %v, want 1", got)
	}
}

func TestFaceMetrics(t *testing.T) {
	m := textedit.NewFaceMetrics(basicfont.Face7x13)
	m.Register("mono", inconsolata.Regular8x16)

	if got := m.Measure("abc", textedit.FontDescriptor{}); got != 21 {
		t.Errorf("default face Measure = %v, want 21", got)
	}
	if got := m.LineHeight(textedit.FontDescriptor{Name: "unknown"}); got != 13 {
		t.Errorf("default face LineHeight = %v, want 13", got)
	}
	mono := textedit.FontDescriptor{Name: "mono"}
	if got := m.Measure("abc", mono); got != 24 {
		t.Errorf("registered face Measure = %v, want 24", got)
	}
	if m.Face(mono) != inconsolata.Regular8x16 {
		t.Error("Face did not return the registered face")
	}
}

func TestWrapWithWideRunes(t *testing.T) {
	// each CJK rune is two cells wide
	lines := textedit.WrapLines([]rune("日本語"), 5, textedit.CellMetrics{}, textedit.FontDescriptor{})
	want := []textedit.VisualLine{
		{Start: 0, Len: 2, Break: textedit.BreakSoft},
		{Start: 2, Len: 1, Break: textedit.BreakEnd},
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %+v, want %+v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}
