package textedit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	atlasFirst = 32
	atlasLast  = 126
	atlasCols  = 16
)

// Glyph locates a rune in a GlyphAtlas.
type Glyph struct {
	U0, V0, U1, V1 float32 // texture coordinates of the cell
	Advance        float32 // pen advance in atlas pixels
}

// GlyphAtlas is a single-channel texture holding printable ASCII rendered
// from a font face on a fixed grid of cells. Runes outside the atlas are drawn
// as '?'.
type GlyphAtlas struct {
	Image        *image.Alpha
	CellW, CellH int
	Ascent       int

	// TextureID is set by the renderer after uploading Image.
	TextureID uint32

	glyphs [atlasLast - atlasFirst + 1]Glyph
}

// NewGlyphAtlas rasterizes runes 32-126 of face.
func NewGlyphAtlas(face font.Face) *GlyphAtlas {
	m := face.Metrics()
	a := &GlyphAtlas{
		CellH:  (m.Ascent + m.Descent).Ceil(),
		Ascent: m.Ascent.Ceil(),
	}

	var advances [atlasLast - atlasFirst + 1]fixed.Int26_6
	for r := rune(atlasFirst); r <= atlasLast; r++ {
		adv, _ := face.GlyphAdvance(r)
		advances[r-atlasFirst] = adv
		a.CellW = max(a.CellW, adv.Ceil())
	}
	a.CellW = max(a.CellW, 1)
	a.CellH = max(a.CellH, 1)

	rows := (len(advances) + atlasCols - 1) / atlasCols
	w, h := atlasCols*a.CellW, rows*a.CellH
	a.Image = image.NewAlpha(image.Rect(0, 0, w, h))

	d := font.Drawer{Dst: a.Image, Src: image.Opaque, Face: face}
	for i, adv := range advances {
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*a.CellW, row*a.CellH+a.Ascent)
		d.DrawString(string(rune(atlasFirst + i)))

		a.glyphs[i] = Glyph{
			U0:      float32(col*a.CellW) / float32(w),
			V0:      float32(row*a.CellH) / float32(h),
			U1:      float32((col+1)*a.CellW) / float32(w),
			V1:      float32((row+1)*a.CellH) / float32(h),
			Advance: fixedToFloat(adv),
		}
	}
	return a
}

// Glyph returns the cell of r, or of '?' if r is not in the atlas.
func (a *GlyphAtlas) Glyph(r rune) Glyph {
	if r < atlasFirst || r > atlasLast {
		r = '?'
	}
	return a.glyphs[r-atlasFirst]
}

// Size returns the texture size in pixels.
func (a *GlyphAtlas) Size() (w, h int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}
