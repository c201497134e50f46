package imop

import (
	"fmt"

	"github.com/esimov/spritefont/utils"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

var blendModes = []string{Darken, Lighten, Multiply, Screen, Overlay}

// Color is a non-premultiplied color with components in the [0, 1] range.
type Color struct {
	R, G, B float64
}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend with no active mode.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if !utils.Contains(blendModes, opType) {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// Apply mixes the source color cs with the backdrop color cb.
func (o *Blend) Apply(cs, cb Color) Color {
	return Color{
		R: o.channel(cs.R, cb.R),
		G: o.channel(cs.G, cb.G),
		B: o.channel(cs.B, cb.B),
	}
}

func (o *Blend) channel(s, b float64) float64 {
	switch o.OpType {
	case Darken:
		return utils.Min(s, b)
	case Lighten:
		return utils.Max(s, b)
	case Multiply:
		return s * b
	case Screen:
		return s + b - s*b
	case Overlay:
		// hard light with the layers swapped
		if b <= 0.5 {
			return 2 * s * b
		}
		return 1 - 2*(1-s)*(1-b)
	default:
		return s
	}
}
