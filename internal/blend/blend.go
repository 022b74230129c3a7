// Package blend implements the premultiplied-alpha compositing used by the
// halftone renderer.
//
// Two modes are needed. Dots are accumulated inside a channel layer with
// source-over, and each finished layer is laid onto the canvas with
// multiply, the way overlapping translucent inks darken paper.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// BlendMode selects a compositing operation.
type BlendMode uint8

const (
	BlendSourceOver BlendMode = iota // Result: S + D*(1-Sa) [default]
	BlendMultiply                    // Result: (1-Sa)*D + (1-Da)*S + Sa*Da*(Sc*Dc)
)

// String returns the CSS name of the mode.
func (m BlendMode) String() string {
	switch m {
	case BlendSourceOver:
		return "source-over"
	case BlendMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// BlendFunc is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetBlendFunc returns the blend function for the given mode.
// Returns blendSourceOver for unknown modes.
func GetBlendFunc(mode BlendMode) BlendFunc {
	switch mode {
	case BlendMultiply:
		return blendMultiply
	default:
		return blendSourceOver
	}
}

// BlendRow blends src onto dst pixel by pixel.
// Both buffers hold premultiplied RGBA and must have the same length, a
// multiple of 4. Fully transparent source pixels are skipped.
func BlendRow(dst, src []byte, mode BlendMode) {
	fn := GetBlendFunc(mode)
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i+0], src[i+1], src[i+2], sa,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}
