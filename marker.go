package spritefont

import "image/color"

// MarkerColor is the bright magenta used to separate the glyphs in the source bitmap.
var MarkerColor = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// IsMarkerColor reports whether c is the marker color. The alpha component is ignored.
func IsMarkerColor(c color.NRGBA) bool {
	return c.R == MarkerColor.R && c.G == MarkerColor.G && c.B == MarkerColor.B
}
