package textedit

import (
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontDescriptor names the font a widget renders with.
// How Name and Size are interpreted is up to the MetricsProvider.
type FontDescriptor struct {
	Name string
	Size float32
}

// MetricsProvider measures text for layout, wrapping and hit testing.
// Widths and heights are in logical units. The engine calls it synchronously
// and repeatedly within one event; implementations may cache internally.
//
// The toolkit ships three implementations:
//
//	MonospaceMetrics  fixed advance per rune (matches the built-in bitmap font)
//	FaceMetrics       any golang.org/x/image/font.Face
//	CellMetrics       terminal cells, one line per row
type MetricsProvider interface {
	// Measure returns the advance width of text.
	Measure(text string, font FontDescriptor) float32

	// LineHeight returns the distance between two baselines.
	LineHeight(font FontDescriptor) float32
}

// MonospaceMetrics gives every rune the same advance.
// A FontDescriptor with a positive Size scales CharWidth and CharHeight by
// Size/CharHeight, so Size is the requested line height.
type MonospaceMetrics struct {
	CharWidth  float32
	CharHeight float32
}

// DefaultMetrics returns the metrics of the built-in 8x8 bitmap font.
func DefaultMetrics() MonospaceMetrics {
	return MonospaceMetrics{CharWidth: 8, CharHeight: 8}
}

func (m MonospaceMetrics) scale(f FontDescriptor) float32 {
	if f.Size <= 0 || m.CharHeight <= 0 {
		return 1
	}
	return f.Size / m.CharHeight
}

// Measure implements MetricsProvider.
func (m MonospaceMetrics) Measure(text string, f FontDescriptor) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n) * m.CharWidth * m.scale(f)
}

// LineHeight implements MetricsProvider.
func (m MonospaceMetrics) LineHeight(f FontDescriptor) float32 {
	return m.CharHeight * m.scale(f)
}

// CellMetrics measures text in terminal cells using Unicode East Asian width
// rules, so wide runes take two columns. Line height is one row.
type CellMetrics struct{}

// Measure implements MetricsProvider.
func (CellMetrics) Measure(text string, _ FontDescriptor) float32 {
	return float32(uniseg.StringWidth(text))
}

// LineHeight implements MetricsProvider.
func (CellMetrics) LineHeight(FontDescriptor) float32 { return 1 }

// FaceMetrics measures text with golang.org/x/image font faces.
// Faces are looked up by FontDescriptor.Name; unknown names use the default
// face. Faces have a fixed size, so FontDescriptor.Size is ignored.
type FaceMetrics struct {
	def   font.Face
	faces map[string]font.Face
}

// NewFaceMetrics creates a provider that falls back to def.
func NewFaceMetrics(def font.Face) *FaceMetrics {
	return &FaceMetrics{def: def, faces: make(map[string]font.Face)}
}

// Register makes face available under name.
func (m *FaceMetrics) Register(name string, face font.Face) {
	m.faces[name] = face
}

// Face returns the face used for f.
func (m *FaceMetrics) Face(f FontDescriptor) font.Face {
	if face, ok := m.faces[f.Name]; ok {
		return face
	}
	return m.def
}

// Measure implements MetricsProvider.
func (m *FaceMetrics) Measure(text string, f FontDescriptor) float32 {
	return fixedToFloat(font.MeasureString(m.Face(f), text))
}

// LineHeight implements MetricsProvider.
func (m *FaceMetrics) LineHeight(f FontDescriptor) float32 {
	return fixedToFloat(m.Face(f).Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// widthCache memoizes per-rune widths for one (provider, font) pair.
// The engine measures text as the sum of its rune widths, so wrapping,
// hit testing and caret placement agree with each other.
type widthCache struct {
	metrics MetricsProvider
	font    FontDescriptor
	widths  map[rune]float32
}

func newWidthCache(m MetricsProvider, f FontDescriptor) *widthCache {
	return &widthCache{metrics: m, font: f, widths: make(map[rune]float32)}
}

func (c *widthCache) runeWidth(r rune) float32 {
	if w, ok := c.widths[r]; ok {
		return w
	}
	w := c.metrics.Measure(string(r), c.font)
	c.widths[r] = w
	return w
}

// span returns the width of text[start:end].
func (c *widthCache) span(text []rune, start, end int) float32 {
	var w float32
	for i := start; i < end; i++ {
		w += c.runeWidth(text[i])
	}
	return w
}

func (c *widthCache) lineHeight() float32 {
	return c.metrics.LineHeight(c.font)
}
