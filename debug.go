package spritefont

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/esimov/spritefont/imop"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OverlayOptions configures the debug overlay.
type OverlayOptions struct {
	// Color tints the glyph cells. Its alpha controls the tint strength.
	Color color.NRGBA
	// BlendMode is one of the imop blend modes, empty for plain source-over.
	BlendMode string
	// Outline draws an opaque border along the edge of every cell.
	Outline bool
	// Labels prints the assigned character in the top-left corner of every cell.
	Labels bool
}

// DefaultOverlayOptions highlights the cells in green, so they stand out of the magenta grid.
var DefaultOverlayOptions = OverlayOptions{
	Color:     color.NRGBA{R: 0x00, G: 0xc8, B: 0x00, A: 0x80},
	BlendMode: imop.Multiply,
	Outline:   true,
	Labels:    true,
}

// Overlay draws the glyph cells found in the font on top of a copy of src.
// It is a debugging aid to verify that the marker grid was split as expected.
func Overlay(src *image.NRGBA, f *Font, opts OverlayOptions) (*image.NRGBA, error) {
	backdrop := imaging.Clone(src)
	bounds := backdrop.Bounds()

	layer := image.NewNRGBA(bounds)
	tint := &image.Uniform{opts.Color}
	for _, g := range f.Glyphs {
		draw.Draw(layer, g.Subrect, tint, image.Point{}, draw.Src)
	}

	op := imop.InitOp()
	if err := op.Set(imop.SrcOver); err != nil {
		return nil, err
	}

	var blend *imop.Blend
	if opts.BlendMode != "" {
		blend = imop.NewBlend()
		if err := blend.Set(opts.BlendMode); err != nil {
			return nil, err
		}
	}

	dst := image.NewNRGBA(bounds)
	op.Draw(dst, layer, backdrop, blend)

	edge := opts.Color
	edge.A = 0xff
	for _, g := range f.Glyphs {
		if opts.Outline {
			drawOutline(dst, g.Subrect, edge)
		}
		if opts.Labels {
			drawLabel(dst, g.Subrect, g.Character, edge)
		}
	}
	return dst, nil
}

// drawOutline draws a one pixel border along the inner edge of r.
func drawOutline(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetNRGBA(x, r.Min.Y, c)
		dst.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetNRGBA(r.Min.X, y, c)
		dst.SetNRGBA(r.Max.X-1, y, c)
	}
}

// drawLabel prints ch using the builtin 7x13 face, clipped to the glyph cell.
func drawLabel(dst *image.NRGBA, r image.Rectangle, ch rune, c color.NRGBA) {
	face := basicfont.Face7x13
	clip, ok := dst.SubImage(r).(*image.NRGBA)
	if !ok || clip.Bounds().Empty() {
		return
	}

	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(r.Min.X+1, r.Min.Y+face.Ascent),
	}
	d.DrawString(string(ch))
}
