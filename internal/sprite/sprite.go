// Package sprite generates the body texture procedurally.
package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise parameters
const (
	alpha      = 2.0
	beta       = 2.0
	octaves    = 3
	noiseScale = 0.08
	cornerFrac = 0.2 // Corner radius as a fraction of the side
)

// New returns a size x size light rounded square with a mottled perlin
// pattern. It is near white so it can be tinted by a colour scale.
func New(size int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	p := perlin.NewPerlin(alpha, beta, octaves, seed)
	radius := float64(size) * cornerFrac

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !insideRounded(float64(x)+0.5, float64(y)+0.5, float64(size), radius) {
				continue
			}
			n := p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
			v := uint8(math.Round(clamp(0.8+0.4*n, 0, 1) * 255))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// insideRounded reports whether (x, y) lies in a side x side square with
// corners rounded to radius r.
func insideRounded(x, y, side, r float64) bool {
	cx := math.Min(math.Max(x, r), side-r)
	cy := math.Min(math.Max(y, r), side-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Tint multiplies every pixel of src by c, channel by channel.
func Tint(src *image.NRGBA, c color.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i+0] = mul8(src.Pix[i+0], c.R)
		dst.Pix[i+1] = mul8(src.Pix[i+1], c.G)
		dst.Pix[i+2] = mul8(src.Pix[i+2], c.B)
		dst.Pix[i+3] = mul8(src.Pix[i+3], c.A)
	}
	return dst
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
