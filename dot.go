package halftone

import (
	"math"
	"math/rand/v2"
)

// opacityLevels is the number of discrete dot opacities.
const opacityLevels = 5

// Jitter amplitudes.
const (
	sizeJitter     = 0.2  // diameter varies by ±10%
	positionJitter = 0.35 // offset spans 35% of the lattice spacing
)

// QuantizeOpacity maps a normalized ink amount t in [0, 1] to one of five
// opacity levels. t is first mapped linearly onto [0.1, 1.0] and then
// rounded to the nearest multiple of 0.9/4, giving the levels
// 0, 0.225, 0.45, 0.675 and 0.9. The mapping is monotone non-decreasing.
func QuantizeOpacity(t float64) float64 {
	mapped := 0.1 + t*0.9
	step := 0.9 / (opacityLevels - 1)
	return math.Round(mapped/step) * step
}

// DotDiameter returns the dot diameter for lattice spacing size and a
// normalized ink amount t. It is monotone in t and never smaller than
// 0.32*size, so light areas keep a visible screen.
func DotDiameter(size, t float64) float64 {
	return size * (0.8*math.Max(0.4, t) + 0.2*t)
}

// jitterDot varies a dot's diameter by ±10% and returns a position offset
// applied to both axes, moving the dot along the image diagonal.
func jitterDot(rng *rand.Rand, diameter, size float64) (d, offset float64) {
	d = diameter * (rng.Float64()*sizeJitter + 1 - sizeJitter/2)
	offset = (rng.Float64() - 0.5) * size * positionJitter
	return d, offset
}
