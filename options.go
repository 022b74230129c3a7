package halftone

import (
	"math"
	"math/rand/v2"
)

// Valid option ranges. Render accepts values outside them; Clamp brings a
// user-supplied Options back inside.
const (
	MinSize       = 2
	MaxSize       = 32
	MinSaturation = 0.5
	MaxSaturation = 3
	MinContrast   = 0.5
	MaxContrast   = 2
)

// Options are the user-facing halftone parameters.
type Options struct {
	// Size is the lattice spacing and the maximum dot diameter, in pixels.
	Size float64

	// Angle is the screen rotation in degrees. Each ink adds its own offset.
	Angle float64

	// Saturation scales each component's distance from the pixel luminance.
	Saturation float64

	// Contrast scales each component's distance from mid-gray.
	Contrast float64
}

// DefaultOptions returns the parameters a fresh session starts with.
func DefaultOptions() Options {
	return Options{
		Size:       5,
		Angle:      34,
		Saturation: 1.3,
		Contrast:   1.0,
	}
}

// Clamp returns o with Size, Saturation and Contrast clamped to their
// ranges and Angle wrapped into [0, 360).
func (o Options) Clamp() Options {
	o.Size = clampRange(o.Size, MinSize, MaxSize)
	o.Saturation = clampRange(o.Saturation, MinSaturation, MaxSaturation)
	o.Contrast = clampRange(o.Contrast, MinContrast, MaxContrast)
	switch {
	case math.IsNaN(o.Angle) || math.IsInf(o.Angle, 0):
		o.Angle = 0
	default:
		o.Angle = math.Mod(o.Angle, 360)
		if o.Angle < 0 {
			o.Angle += 360
		}
	}
	return o
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// RenderOption configures a single Render or Process call.
//
// Example:
//
//	// Reproducible output rendered on four goroutines
//	res, err := halftone.Render(pm, opts, halftone.WithSeed(42), halftone.WithWorkers(4))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render.
type renderOptions struct {
	jitter  bool
	seed    uint64
	seeded  bool
	source  func(Channel) rand.Source
	workers int
	layers  bool
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		jitter:  true,
		workers: 1,
	}
}

// WithSeed makes the dot jitter reproducible. Every channel draws from its
// own PCG stream derived from the seed, so output does not depend on the
// order in which channels are rendered.
func WithSeed(seed uint64) RenderOption {
	return func(o *renderOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRandSource injects the random source used for each channel's jitter.
// It takes precedence over WithSeed. The function is called once per
// channel; returned sources must not be shared between channels when
// rendering with more than one worker.
func WithRandSource(fn func(Channel) rand.Source) RenderOption {
	return func(o *renderOptions) {
		o.source = fn
	}
}

// WithoutJitter disables the random size and position variation, drawing
// every dot exactly on its lattice point.
func WithoutJitter() RenderOption {
	return func(o *renderOptions) {
		o.jitter = false
	}
}

// WithWorkers renders the channel layers on up to n goroutines.
// Values below 2 render sequentially. Composition order is unaffected.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithLayers keeps a copy of every channel layer in Result.Layers.
func WithLayers() RenderOption {
	return func(o *renderOptions) {
		o.layers = true
	}
}

// channelRand returns the jitter random generator for ch.
func (o *renderOptions) channelRand(ch Channel) *rand.Rand {
	switch {
	case o.source != nil:
		return rand.New(o.source(ch))
	case o.seeded:
		return rand.New(rand.NewPCG(o.seed, uint64(ch)+1))
	default:
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}
