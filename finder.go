package spritefont

import "image"

// FindGlyphs searches the bitmap for glyph cells surrounded by the marker color
// and returns their bounds in raster order (top to bottom, left to right).
//
// A cell starts at a pixel which is not marker colored but has marker colored
// neighbours on its left and above it. Its width is measured along the top row
// and its height along the left column, the interior is not inspected.
func FindGlyphs(v *PixelView) []image.Rectangle {
	var rects []image.Rectangle

	WalkGlyphs(v, func(r image.Rectangle) bool {
		rects = append(rects, r)
		return true
	})
	return rects
}

// WalkGlyphs calls fn for every glyph cell in the same order as FindGlyphs.
// The walk stops as soon as fn returns false.
func WalkGlyphs(v *PixelView, fn func(image.Rectangle) bool) {
	width, height := v.Width(), v.Height()

	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			if v.isMarker(x, y) || !v.isMarker(x-1, y) || !v.isMarker(x, y-1) {
				continue
			}

			w, h := 1, 1
			for x+w < width && !v.isMarker(x+w, y) {
				w++
			}
			for y+h < height && !v.isMarker(x, y+h) {
				h++
			}

			if !fn(image.Rect(x, y, x+w, y+h)) {
				return
			}
		}
	}
}
