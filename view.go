package spritefont

import (
	"image"
	"image/color"
)

// PixelView is a read-only accessor over the pixels of a normalized bitmap.
// It must be closed once the scan is done; using it afterwards panics.
type PixelView struct {
	img    *image.NRGBA
	width  int
	height int
}

// NewPixelView opens a view over img. The image must not be modified while the view is open.
func NewPixelView(img *image.NRGBA) *PixelView {
	b := img.Bounds()
	return &PixelView{
		img:    img,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Width returns the number of columns of the underlying bitmap.
func (v *PixelView) Width() int { return v.width }

// Height returns the number of rows of the underlying bitmap.
func (v *PixelView) Height() int { return v.height }

// At returns the color of the pixel at (x, y), relative to the top-left corner of the bitmap.
func (v *PixelView) At(x, y int) color.NRGBA {
	if v.img == nil {
		panic("spritefont: pixel view used after close")
	}
	b := v.img.Bounds()
	i := v.img.PixOffset(b.Min.X+x, b.Min.Y+y)
	s := v.img.Pix[i : i+4 : i+4]

	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// isMarker is a shortcut for IsMarkerColor(v.At(x, y)).
func (v *PixelView) isMarker(x, y int) bool {
	return IsMarkerColor(v.At(x, y))
}

// Close releases the view. Calling it more than once is a no-op.
func (v *PixelView) Close() error {
	v.img = nil
	return nil
}
