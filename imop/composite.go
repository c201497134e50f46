// Package imop implements the Porter-Duff composition operations and the
// separable blend modes used for mixing a graphic element with its backdrop.
//
// The image/draw package only provides the source and source-over-destination
// operators. The debug overlay needs to tint glyph cells on top of the font
// bitmap without hiding it, so the remaining operators live here.
package imop

import (
	"errors"
	"fmt"
	"image"

	"github.com/esimov/spritefont/utils"
)

// ErrUnsupportedMode is returned when an unknown composition or blend mode is requested.
var ErrUnsupportedMode = errors.New("unsupported mode")

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

var compositeOps = []string{Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Composite holds the currently active composition operator.
type Composite struct {
	current string
}

// InitOp returns a compositor using the Copy operator.
func InitOp() *Composite {
	return &Composite{current: Copy}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(compositeOps, cop) {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop coefficients.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	default:
		return 1, 0
	}
}

// Draw composes src over backdrop and stores the result in dst. When blend is
// not nil the source color is first mixed with the backdrop using the blend mode.
// Only the area shared by the three images is processed.
func (op *Composite) Draw(dst, src, backdrop *image.NRGBA, blend *Blend) {
	rect := dst.Bounds().Intersect(src.Bounds()).Intersect(backdrop.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			si := src.PixOffset(x, y)
			bi := backdrop.PixOffset(x, y)
			di := dst.PixOffset(x, y)

			cs := toColor(src.Pix[si : si+4])
			cb := toColor(backdrop.Pix[bi : bi+4])
			as, ab := float64(src.Pix[si+3])/255, float64(backdrop.Pix[bi+3])/255

			if blend != nil && blend.Get() != "" {
				mix := blend.Apply(cs, cb)
				cs = Color{
					R: (1-ab)*cs.R + ab*mix.R,
					G: (1-ab)*cs.G + ab*mix.G,
					B: (1-ab)*cs.B + ab*mix.B,
				}
			}

			fa, fb := op.factors(as, ab)
			ao := fa*as + fb*ab

			var co Color
			if ao > 0 {
				co = Color{
					R: (fa*as*cs.R + fb*ab*cb.R) / ao,
					G: (fa*as*cs.G + fb*ab*cb.G) / ao,
					B: (fa*as*cs.B + fb*ab*cb.B) / ao,
				}
			}

			dst.Pix[di+0] = toByte(co.R)
			dst.Pix[di+1] = toByte(co.G)
			dst.Pix[di+2] = toByte(co.B)
			dst.Pix[di+3] = toByte(ao)
		}
	}
}

func toColor(px []uint8) Color {
	return Color{
		R: float64(px[0]) / 255,
		G: float64(px[1]) / 255,
		B: float64(px[2]) / 255,
	}
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
}
