package halftone

import (
	"math"

	"github.com/gogpu/halftone/internal/blend"
	intimage "github.com/gogpu/halftone/internal/image"
)

// layerPool recycles layer buffers between renders of the same size.
// Four buffers per size covers one render's channels.
var layerPool = intimage.NewPool(4)

var sourceOver = blend.GetBlendFunc(blend.BlendSourceOver)

// layer is a transparent premultiplied RGBA buffer that collects the dots of
// one ink.
type layer struct {
	width, height int
	pix           []byte
}

func newLayer(width, height int) *layer {
	return &layer{
		width:  width,
		height: height,
		pix:    layerPool.Get(width, height),
	}
}

// release hands the buffer back to the pool. The layer must not be used
// afterwards.
func (l *layer) release() {
	layerPool.Put(l.pix, l.width, l.height)
	l.pix = nil
}

// fillCircle draws an anti-aliased filled circle of ink with its alpha scaled
// by opacity, source-over onto the layer. It reports whether any pixel was
// touched.
func (l *layer) fillCircle(cx, cy, radius float64, ink RGBA, opacity float64) bool {
	if radius <= 0 || opacity <= 0 {
		return false
	}
	reach := radius + sdfAntialiasWidth
	x0 := max(0, int(math.Floor(cx-reach)))
	y0 := max(0, int(math.Floor(cy-reach)))
	x1 := min(l.width-1, int(math.Ceil(cx+reach)))
	y1 := min(l.height-1, int(math.Ceil(cy+reach)))

	paint := ink.WithAlpha(opacity)
	drawn := false
	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		row := y * l.width * 4
		for x := x0; x <= x1; x++ {
			cov := filledCircleCoverage(float64(x)+0.5, py, cx, cy, radius)
			if cov <= 0 {
				continue
			}
			sr, sg, sb, sa := paint.WithAlpha(cov).premultipliedBytes()
			if sa == 0 {
				continue
			}
			i := row + x*4
			l.pix[i+0], l.pix[i+1], l.pix[i+2], l.pix[i+3] = sourceOver(
				sr, sg, sb, sa,
				l.pix[i+0], l.pix[i+1], l.pix[i+2], l.pix[i+3],
			)
			drawn = true
		}
	}
	return drawn
}

// multiplyOnto composites the layer onto a premultiplied canvas of the same
// size with the multiply blend mode.
func (l *layer) multiplyOnto(canvas []byte) {
	blend.BlendRow(canvas, l.pix, blend.BlendMultiply)
}

// toPixmap returns the layer as a straight-alpha pixmap.
func (l *layer) toPixmap() *Pixmap {
	pm := NewPixmap(l.width, l.height)
	for i := 0; i+3 < len(l.pix); i += 4 {
		pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = blend.Unpremultiply(
			l.pix[i+0], l.pix[i+1], l.pix[i+2], l.pix[i+3],
		)
	}
	return pm
}
