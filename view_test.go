package spritefont

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelView_At(t *testing.T) {
	img := gridImage(
		"M#",
		".M",
	)
	v := NewPixelView(img)
	defer v.Close()

	assert := assert.New(t)
	assert.Equal(2, v.Width())
	assert.Equal(2, v.Height())
	assert.Equal(MarkerColor, v.At(0, 0))
	assert.Equal(white, v.At(1, 0))
	assert.Equal(black, v.At(0, 1))
}

func TestPixelView_RelativeToBounds(t *testing.T) {
	img := gridImage(
		"MMM",
		"M#M",
		"MMM",
	)
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)

	v := NewPixelView(sub)
	defer v.Close()

	assert.Equal(t, white, v.At(0, 0))
	assert.Equal(t, MarkerColor, v.At(1, 1))
}

func TestPixelView_Close(t *testing.T) {
	v := NewPixelView(gridImage("M"))

	assert.NoError(t, v.Close())
	assert.NoError(t, v.Close())
	assert.Panics(t, func() { v.At(0, 0) })
}
