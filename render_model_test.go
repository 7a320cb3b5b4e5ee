package textedit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/textedit"
)

func TestRenderModelSingleLine(t *testing.T) {
	e := newSingle(t, "hello world")

	want := textedit.RenderModel{
		Bounds: textedit.Rect{X: 10, Y: 10, W: 100, H: 10},
		Inner:  textedit.Rect{X: 10, Y: 10, W: 100, H: 10},
		Lines: []textedit.VisibleLine{
			{Text: "ello world", X: 10, Y: 10, Start: 1},
		},
		Cursor:        textedit.Rect{X: 110, Y: 10, W: 1, H: 10},
		CursorVisible: true,
		Active:        true,
		LineHeight:    10,
		Scale:         1,
	}
	if diff := cmp.Diff(want, e.RenderModel()); diff != "" {
		t.Errorf("RenderModel() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderModelSingleLineSelection(t *testing.T) {
	e := newSingle(t, "hello world")
	e.Select(0, 3)

	m := e.RenderModel()
	if diff := cmp.Diff([]textedit.VisibleLine{{Text: "hello worl", X: 10, Y: 10}}, m.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]textedit.Rect{{X: 10, Y: 10, W: 30, H: 10}}, m.Selection); diff != "" {
		t.Errorf("Selection mismatch (-want +got):\n%s", diff)
	}
	if m.Cursor.X != 40 {
		t.Errorf("Cursor.X = %v, want 40", m.Cursor.X)
	}
}

func TestRenderModelMultiLine(t *testing.T) {
	e := newMulti(t, "AAAAAA\nbb\ncc", 50, 20)
	// {0,5,soft} {5,1,newline} {7,2,newline} {10,2,end}; two visible

	m := e.RenderModel()
	wantLines := []textedit.VisibleLine{
		{Text: "bb", X: 0, Y: 0, Start: 7},
		{Text: "cc", X: 0, Y: 10, Start: 10},
	}
	if diff := cmp.Diff(wantLines, m.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(textedit.Rect{X: 20, Y: 10, W: 1, H: 10}, m.Cursor); diff != "" {
		t.Errorf("Cursor mismatch (-want +got):\n%s", diff)
	}

	e.Select(8, 11)
	m = e.RenderModel()
	wantSel := []textedit.Rect{
		{X: 10, Y: 0, W: 20, H: 10}, // "b" plus the newline
		{X: 0, Y: 10, W: 10, H: 10},
	}
	if diff := cmp.Diff(wantSel, m.Selection); diff != "" {
		t.Errorf("Selection mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderModelSelectionAtSoftBreak(t *testing.T) {
	e := newMulti(t, "AAAAAAB", 50, 20)
	// {0,5,soft} {5,2,end}

	tests := []struct {
		start, end int
		want       []textedit.Rect
	}{
		// starts at the soft break: nothing on the first line
		{5, 7, []textedit.Rect{{X: 0, Y: 10, W: 20, H: 10}}},
		// crosses the soft break without widening past the inner width
		{3, 7, []textedit.Rect{
			{X: 30, Y: 0, W: 20, H: 10},
			{X: 0, Y: 10, W: 20, H: 10},
		}},
	}
	for _, tt := range tests {
		e.Select(tt.start, tt.end)
		if diff := cmp.Diff(tt.want, e.RenderModel().Selection); diff != "" {
			t.Errorf("Select(%d, %d) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
		}
	}
}

func TestRenderModelCursorScrolledOut(t *testing.T) {
	e := newMulti(t, "a\nb\nc\nd", 100, 20)
	e.SetActive(false)
	if m := e.RenderModel(); m.CursorVisible {
		t.Error("inactive editor shows a cursor")
	}
}

func TestRenderModelPlaceholder(t *testing.T) {
	e := textedit.NewEditor(textedit.Rect{W: 100},
		textedit.WithMetrics(tenPx),
		textedit.WithPadding(5),
		textedit.WithPlaceholder("Name"),
	)

	m := e.RenderModel()
	if !m.Placeholder {
		t.Fatal("Placeholder = false for empty inactive editor")
	}
	if diff := cmp.Diff([]textedit.VisibleLine{{Text: "Name", X: 5, Y: 5}}, m.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if m.CursorVisible {
		t.Error("placeholder model shows a cursor")
	}

	e.SetActive(true)
	m = e.RenderModel()
	if m.Placeholder {
		t.Error("placeholder shown while active")
	}
	if len(m.Lines) != 1 || m.Lines[0].Text != "" {
		t.Errorf("Lines = %+v, want one empty line", m.Lines)
	}
	if !m.CursorVisible {
		t.Error("active editor hides the cursor")
	}
}
