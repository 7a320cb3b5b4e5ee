package textedit

import "github.com/go-logr/logr"

// Mode selects single-line or multi-line editing.
type Mode int

const (
	// ModeSingleLine scrolls horizontally and never wraps.
	// Return commits, newlines in input become spaces.
	ModeSingleLine Mode = iota
	// ModeMultiLine word-wraps to the editor width and scrolls vertically.
	ModeMultiLine
)

func (m Mode) String() string {
	if m == ModeMultiLine {
		return "multi-line"
	}
	return "single-line"
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithMaxLength sets the buffer capacity in runes.
// Non-positive values select DefaultMaxLength.
func WithMaxLength(n int) EditorOption {
	return func(e *Editor) { e.maxLength = n }
}

// WithMode sets the editing mode.
func WithMode(m Mode) EditorOption {
	return func(e *Editor) { e.mode = m }
}

// WithMultiline is shorthand for WithMode(ModeMultiLine).
func WithMultiline() EditorOption {
	return WithMode(ModeMultiLine)
}

// WithPadding sets the inner padding between bounds and text, in logical units.
func WithPadding(p float32) EditorOption {
	return func(e *Editor) { e.padding = maxf(0, p) }
}

// WithFont sets the font descriptor passed to the metrics provider.
func WithFont(f FontDescriptor) EditorOption {
	return func(e *Editor) { e.font = f }
}

// WithPlaceholder sets text shown while the editor is empty and inactive.
func WithPlaceholder(s string) EditorOption {
	return func(e *Editor) { e.placeholder = s }
}

// WithScale sets the device-pixels-per-logical-unit factor applied to
// pointer coordinates.
func WithScale(s float32) EditorOption {
	return func(e *Editor) {
		if s > 0 {
			e.scale = s
		}
	}
}

// WithMetrics sets the text metrics provider.
func WithMetrics(m MetricsProvider) EditorOption {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithClipboard sets the clipboard provider.
func WithClipboard(c ClipboardProvider) EditorOption {
	return func(e *Editor) {
		if c != nil {
			e.clipboard = c
		}
	}
}

// WithLogger sets the logger. Rejected edits and state changes are logged at
// V(1), every handled event at V(2).
func WithLogger(l logr.Logger) EditorOption {
	return func(e *Editor) { e.log = l }
}

// WithOnCommit sets a callback fired with the content when Return is
// pressed in a single-line editor.
func WithOnCommit(fn func(text string)) EditorOption {
	return func(e *Editor) { e.onCommit = fn }
}

// WithOnChange sets a callback fired after an input event changes the content.
func WithOnChange(fn func(text string)) EditorOption {
	return func(e *Editor) { e.onChange = fn }
}

// WithText sets the initial content. Text beyond the capacity is dropped.
func WithText(s string) EditorOption {
	return func(e *Editor) { e.initial = s }
}
