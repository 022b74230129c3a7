package halftone

import (
	"image"
	"math"
)

// channelBoost scales raw ink amounts up so mid-tones print a little heavier.
const channelBoost = 1.15

// Separate applies saturation and contrast correction to src and returns the
// result as a new pixmap. src is not modified and alpha is copied unchanged.
//
// For each pixel the luminance is the mean of the source R, G and B. Each
// color component is first pushed away from the luminance by the saturation
// factor, then away from 128 by the contrast factor. Both intermediate
// results are stored as 8-bit values: clamped to [0, 255] and rounded half
// to even.
func Separate(src *Pixmap, saturation, contrast float64) *Pixmap {
	dst := NewPixmap(src.width, src.height)
	s, d := src.data, dst.data
	for i := 0; i+3 < len(s); i += 4 {
		r, g, b := s[i], s[i+1], s[i+2]
		lum := (float64(r) + float64(g) + float64(b)) / 3
		d[i+0] = correct(r, lum, saturation, contrast)
		d[i+1] = correct(g, lum, saturation, contrast)
		d[i+2] = correct(b, lum, saturation, contrast)
		d[i+3] = s[i+3]
	}
	return dst
}

func correct(v uint8, lum, saturation, contrast float64) uint8 {
	sat := storeByte(lum + (float64(v)-lum)*saturation)
	return storeByte((float64(sat)-128)*contrast + 128)
}

// storeByte converts to a byte the way an 8-bit clamped pixel buffer does.
func storeByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// ChannelValue returns the ink amount of ch for a corrected pixel, in
// [floor, 255]. Cyan, magenta and yellow are the inverted red, green and
// blue components; black is the inverted brightest component.
func ChannelValue(ch Channel, r, g, b uint8) float64 {
	var raw float64
	switch ch {
	case Cyan:
		raw = 255 - float64(r)
	case Magenta:
		raw = 255 - float64(g)
	case Yellow:
		raw = 255 - float64(b)
	default:
		raw = 255 - float64(max(r, g, b))
	}
	return math.Min(255, math.Max(channelTable[ch].Floor, raw*channelBoost))
}

func (p *Pixmap) channelValue(ch Channel, x, y int) float64 {
	i := (y*p.width + x) * 4
	return ChannelValue(ch, p.data[i], p.data[i+1], p.data[i+2])
}

// Coverage returns the mean normalized ink amount of every channel over p,
// indexed by Channel. An empty pixmap has zero coverage.
func Coverage(p *Pixmap) [4]float64 {
	var sum [4]float64
	n := p.width * p.height
	if n <= 0 {
		return sum
	}
	for i := 0; i+3 < len(p.data); i += 4 {
		r, g, b := p.data[i], p.data[i+1], p.data[i+2]
		for _, ch := range Channels {
			sum[ch] += ChannelValue(ch, r, g, b)
		}
	}
	for ch := range sum {
		sum[ch] /= 255 * float64(n)
	}
	return sum
}

// ChannelMap renders the ink amount of ch as a grayscale plate: black where
// the ink is heaviest, light gray where only the floor remains.
func ChannelMap(p *Pixmap, ch Channel) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	for y := range p.height {
		for x := range p.width {
			v := p.channelValue(ch, x, y)
			img.Pix[y*img.Stride+x] = 255 - uint8(math.Round(v))
		}
	}
	return img
}
