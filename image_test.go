package spritefont

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/esimov/spritefont/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_ToNRGBA(t *testing.T) {
	rect := image.Rect(-1, -1, 15, 15)
	colors := palette.Plan9
	testCases := []struct {
		name string
		img  image.Image
	}{
		{
			name: "NRGBA",
			img:  makeNRGBAImage(rect, colors),
		},
		{
			name: "RGBA",
			img:  makeRGBAImage(rect, colors),
		},
		{
			name: "Paletted",
			img:  makePalettedImage(rect, colors),
		},
		{
			name: "YCbCr-444",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio444),
		},
		{
			name: "YCbCr-422",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio422),
		},
		{
			name: "YCbCr-420",
			img:  makeYCbCrImage(rect, colors, image.YCbCrSubsampleRatio420),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := ToNRGBA(tc.img)
			r := tc.img.Bounds()

			assert.Equal(t, image.Rect(0, 0, r.Dx(), r.Dy()), dst.Bounds())
			for y := r.Min.Y; y < r.Max.Y; y++ {
				got := dst.Pix[dst.PixOffset(0, y-r.Min.Y):dst.PixOffset(0, y-r.Min.Y+1)]
				want := readRow(tc.img, y)
				if !compareBytes(got, want, 1) {
					t.Errorf("row y=%d: got %v want %v", y, got, want)
				}
			}
		})
	}
}

func TestImage_ToNRGBAKeepsAnchoredNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	assert.Same(t, img, ToNRGBA(img))
}

func TestImage_EncodeByExtension(t *testing.T) {
	img := gridImage(threeGlyphs...)
	dir := t.TempDir()

	for _, name := range []string{"page.png", "page.bmp", "page.tif", "page.gif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, writeImageFile(path, img))

			decoded, err := imaging.Open(path)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), decoded.Bounds())
		})
	}

	f, err := os.Create(filepath.Join(dir, "page.xyz"))
	require.NoError(t, err)
	defer f.Close()
	assert.Error(t, encodeImg(f, img))
}

func TestAlpha_IsAlphaEntirely(t *testing.T) {
	img := gridImage(threeGlyphs...)
	assert.True(t, IsAlphaEntirely(0xff, img))
	assert.False(t, IsAlphaEntirely(0x00, img))

	img.SetNRGBA(3, 2, color.NRGBA{A: 0x7f})
	assert.False(t, IsAlphaEntirely(0xff, img))
}

func TestAlpha_ConvertGreyToAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 30, G: 60, B: 90, A: 0xff})
	img.SetNRGBA(1, 0, white)
	img.SetNRGBA(2, 0, black)

	ConvertGreyToAlpha(img)

	assert.Equal(t, []uint8{
		0xff, 0xff, 0xff, 60,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0x00,
	}, img.Pix)
}

func makeYCbCrImage(rect image.Rectangle, colors []color.Color, sr image.YCbCrSubsampleRatio) *image.YCbCr {
	img := image.NewYCbCr(rect, sr)
	j := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			iy := img.YOffset(x, y)
			ic := img.COffset(x, y)
			c := color.NRGBAModel.Convert(colors[j]).(color.NRGBA)
			img.Y[iy], img.Cb[ic], img.Cr[ic] = color.RGBToYCbCr(c.R, c.G, c.B)
			j++
		}
	}
	return img
}

func makeNRGBAImage(rect image.Rectangle, colors []color.Color) *image.NRGBA {
	img := image.NewNRGBA(rect)
	fillDrawImage(img, colors)
	return img
}

func makeRGBAImage(rect image.Rectangle, colors []color.Color) *image.RGBA {
	img := image.NewRGBA(rect)
	fillDrawImage(img, colors)
	return img
}

func makePalettedImage(rect image.Rectangle, colors []color.Color) *image.Paletted {
	img := image.NewPaletted(rect, colors)
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetColorIndex(x, y, uint8(i%len(colors)))
			i++
		}
	}
	return img
}

func fillDrawImage(img draw.Image, colors []color.Color) {
	colorsNRGBA := make([]color.NRGBA, len(colors))
	for i, c := range colors {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		nrgba.A = uint8(i % 256)
		colorsNRGBA[i] = nrgba
	}
	rect := img.Bounds()
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, colorsNRGBA[i])
			i++
		}
	}
}

func readRow(img image.Image, y int) []uint8 {
	row := make([]byte, img.Bounds().Dx()*4)
	i := 0
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
		i += 4
	}
	return row
}

func compareBytes(a, b []uint8, delta int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if utils.Abs(int(a[i])-int(b[i])) > delta {
			return false
		}
	}
	return true
}
