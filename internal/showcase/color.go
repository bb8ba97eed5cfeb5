package showcase

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette points for the two highlight states.
const (
	SaturationDeselected = 0.3
	LightnessDeselected  = 0.2
	SaturationSelected   = 0.9
	LightnessSelected    = 0.7
	Alpha                = 0.92
)

// HSLA is a colour in hue/saturation/lightness with straight alpha.
// Hue is in degrees, the rest in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// DeselectedColor is the dim palette point for hue.
func DeselectedColor(hue float64) HSLA {
	return HSLA{H: hue, S: SaturationDeselected, L: LightnessDeselected, A: Alpha}
}

// SelectedColor is the vivid palette point for hue.
func SelectedColor(hue float64) HSLA {
	return HSLA{H: hue, S: SaturationSelected, L: LightnessSelected, A: Alpha}
}

// White is used for the label before anything is selected.
var White = HSLA{H: 0, S: 0, L: 1, A: 1}

// NRGBA converts to an 8-bit non-premultiplied colour.
func (c HSLA) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsl(c.H, c.S, c.L).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// RGBA implements color.Color.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
