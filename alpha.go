package spritefont

import "image"

// IsAlphaEntirely reports whether every pixel of the image has the given alpha value.
func IsAlphaEntirely(alpha uint8, img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i+3] != alpha {
				return false
			}
			i += 4
		}
	}
	return true
}

// ConvertGreyToAlpha turns the brightness of every pixel into its alpha value
// and paints the pixel white. It is used for monochrome fonts drawn white on black.
func ConvertGreyToAlpha(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			s := img.Pix[i : i+4 : i+4]
			s[3] = uint8((int(s[0]) + int(s[1]) + int(s[2])) / 3)
			s[0], s[1], s[2] = 0xff, 0xff, 0xff
			i += 4
		}
	}
}
