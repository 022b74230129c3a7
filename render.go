package halftone

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gogpu/halftone/internal/parallel"
)

// ChannelStats counts the work done for one ink.
type ChannelStats struct {
	// Points is the number of lattice points within reach of the image.
	Points int

	// Dots is the number of points that sampled the image and drew a dot.
	Dots int
}

// Stats summarizes a render.
type Stats struct {
	Channels [4]ChannelStats // indexed by Channel
	Elapsed  time.Duration
}

// Result is the output of Render.
type Result struct {
	// Image is the opaque halftone, the same size as the source.
	Image *Pixmap

	// Layers holds each ink's dot layer on a transparent background,
	// indexed by Channel. Only filled when WithLayers is given.
	Layers [4]*Pixmap

	Stats Stats
}

// Render produces the CMYK halftone of src.
//
// The source is color corrected with Separate, then one dot layer per ink is
// built from a lattice rotated by opts.Angle plus the ink's offset. The
// layers are multiplied onto white paper in C, M, Y, K order. The result has
// the same dimensions as src and every pixel is opaque.
//
// Render returns ErrInvalidDimensions for an empty source and
// ErrInvalidOptions for a non-positive dot size. Other option values are
// used as given; see Options.Clamp.
func Render(src *Pixmap, opts Options, ropts ...RenderOption) (*Result, error) {
	if src == nil || src.width <= 0 || src.height <= 0 {
		w, h := 0, 0
		if src != nil {
			w, h = src.width, src.height
		}
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(src.data) != src.width*src.height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidDimensions, len(src.data), src.width, src.height)
	}
	if !(opts.Size > 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidOptions, opts.Size)
	}

	o := defaultRenderOptions()
	for _, opt := range ropts {
		opt(&o)
	}

	start := time.Now()
	corrected := Separate(src, opts.Saturation, opts.Contrast)

	// Random generators are created up front, in channel order, so an
	// injected source sees the same call sequence regardless of workers.
	var rngs [4]*rand.Rand
	if o.jitter {
		for _, ch := range Channels {
			rngs[ch] = o.channelRand(ch)
		}
	}

	var layers [4]*layer
	var stats Stats
	work := make([]func(), 0, len(Channels))
	for _, ch := range Channels {
		work = append(work, func() {
			layers[ch] = newLayer(src.width, src.height)
			stats.Channels[ch] = drawChannel(layers[ch], corrected, ch, opts, rngs[ch])
		})
	}
	runChannels(work, o.workers)

	out := NewPixmap(src.width, src.height)
	out.Clear(White)
	res := &Result{Image: out}
	for _, ch := range Channels {
		layers[ch].multiplyOnto(out.data)
		if o.layers {
			res.Layers[ch] = layers[ch].toPixmap()
		}
		layers[ch].release()
	}

	stats.Elapsed = time.Since(start)
	res.Stats = stats

	log := Logger()
	for _, ch := range Channels {
		log.Debug("halftone: channel rendered",
			"channel", ch.String(),
			"angle", opts.Angle+ch.Config().AngleOffset,
			"points", stats.Channels[ch].Points,
			"dots", stats.Channels[ch].Dots)
	}
	log.Debug("halftone: render done",
		"width", src.width,
		"height", src.height,
		"size", opts.Size,
		"workers", o.workers,
		"elapsed", stats.Elapsed)

	return res, nil
}

// runChannels executes the per-channel work, on a worker pool when more than
// one worker is requested.
func runChannels(work []func(), workers int) {
	if workers < 2 {
		for _, fn := range work {
			fn()
		}
		return
	}
	pool := parallel.NewWorkerPool(min(workers, len(work)))
	defer pool.Close()
	pool.ExecuteAll(work)
}

// drawChannel draws every dot of ch into dst. rng is nil when jitter is off.
func drawChannel(dst *layer, src *Pixmap, ch Channel, opts Options, rng *rand.Rand) ChannelStats {
	cfg := ch.Config()
	lat := NewLattice(src.width, src.height, opts.Size, opts.Angle+cfg.AngleOffset)

	var st ChannelStats
	lat.Each(func(x, y float64) {
		st.Points++
		px, py := int(x), int(y)
		if x < 0 || y < 0 || px >= src.width || py >= src.height {
			return
		}
		t := src.channelValue(ch, px, py) / 255
		diameter := DotDiameter(opts.Size, t)
		var offset float64
		if rng != nil {
			diameter, offset = jitterDot(rng, diameter, opts.Size)
		}
		dst.fillCircle(x+offset, y+offset, diameter/2, cfg.Ink, QuantizeOpacity(t))
		st.Dots++
	})
	return st
}
