package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(float32(1.5), Max(float32(1.5), 0))
	assert.Equal(3, Abs(-3))
	assert.Equal(10, Clamp(12, 0, 10))
	assert.Equal(0, Clamp(-1, 0, 10))
}

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	c, err := HexToRGBA("#ff00ff")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0xff, B: 0xff, A: 0xff}, c)

	c, err = HexToRGBA("0f08")
	assert.Error(err)

	c, err = HexToRGBA("f0f")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0xff, B: 0xff, A: 0xff}, c)

	c, err = HexToRGBA("00ff0080")
	assert.NoError(err)
	assert.Equal(color.NRGBA{G: 0xff, A: 0x80}, c)

	_, err = HexToRGBA("zzzzzz")
	assert.Error(err)
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{".png", ".bmp"}, ".bmp"))
	assert.False(t, Contains([]string{".png", ".bmp"}, ".jpg"))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("350ms", FormatTime(350*time.Millisecond))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
	assert.Equal("25h 0m 0.00s", FormatTime(25*time.Hour))
}

func TestUtils_DecorateText(t *testing.T) {
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestUtils_StatusLine(t *testing.T) {
	line := StatusLine("done", SuccessMessage)
	assert.Equal(t, StatusColor+"⚡ SPRITEFONT"+DefaultColor+" "+SuccessColor+"done"+DefaultColor, line)
}
