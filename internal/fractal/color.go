package fractal

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pixel is one output cell's background color.
type Pixel struct {
	R, G, B uint8
}

// Color converts p to a colorful.Color.
func (p Pixel) Color() colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
}

// Hex returns p as "#rrggbb".
func (p Pixel) Hex() string { return p.Color().Hex() }

// Shade maps an escape count onto a dark-to-warm gradient:
//
//	t = iter/maxIter, it = 1-t
//	r = 255*(1-it^3), g = 255*t^2, b = 40*t
//
// Channels are clamped to [0,255] so out-of-range counts cannot wrap.
func Shade(iter, maxIter int) Pixel {
	if maxIter <= 0 {
		return Pixel{}
	}
	t := float64(iter) / float64(maxIter)
	it := 1 - t

	c := colorful.Color{
		R: 1 - it*it*it,
		G: t * t,
		B: 40.0 / 255.0 * t,
	}
	r, g, b := c.Clamped().RGB255()
	return Pixel{R: r, G: g, B: b}
}
