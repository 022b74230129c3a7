package halftone

import "math"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are straight (not
// premultiplied) unless a method says otherwise.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA8 creates a color from 8-bit channels and a [0, 1] alpha, the way
// CSS rgba() colors are written.
func RGBA8(r, g, b uint8, a float64) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: a,
	}
}

// WithAlpha returns the color with alpha scaled by the given factor.
func (c RGBA) WithAlpha(factor float64) RGBA {
	c.A *= factor
	return c
}

// Premultiply returns a premultiplied version of the color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// bytes returns the straight 8-bit components, rounded to nearest.
func (c RGBA) bytes() (r, g, b, a uint8) {
	return unitToByte(c.R), unitToByte(c.G), unitToByte(c.B), unitToByte(c.A)
}

// premultipliedBytes returns the premultiplied 8-bit components.
func (c RGBA) premultipliedBytes() (r, g, b, a uint8) {
	return c.Premultiply().bytes()
}

func unitToByte(v float64) uint8 {
	return uint8(clamp255(math.Round(v * 255)))
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// White is the paper every render starts from.
var White = RGB(1, 1, 1)
