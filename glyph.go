package spritefont

import (
	"image"

	"github.com/disintegration/imaging"
)

// Glyph associates a character with its cell in the source bitmap.
// Several glyphs share the same Source.
type Glyph struct {
	Character rune
	Source    *image.NRGBA
	Subrect   image.Rectangle

	// Layout adjustments consumed by the font compiler.
	XOffset  float32
	YOffset  float32
	XAdvance float32
}

// NewGlyph creates a glyph advancing by the width of its cell.
func NewGlyph(ch rune, src *image.NRGBA, rect image.Rectangle) Glyph {
	return Glyph{
		Character: ch,
		Source:    src,
		Subrect:   rect,
		XAdvance:  float32(rect.Dx()),
	}
}

// Width returns the width of the glyph cell.
func (g Glyph) Width() int { return g.Subrect.Dx() }

// Height returns the height of the glyph cell.
func (g Glyph) Height() int { return g.Subrect.Dy() }

// Image returns a copy of the glyph pixels, anchored at the origin.
func (g Glyph) Image() *image.NRGBA {
	return imaging.Crop(g.Source, g.Subrect)
}
