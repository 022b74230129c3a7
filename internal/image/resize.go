package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img to width x height with bilinear filtering, matching the
// smoothing a canvas applies when a bitmap is drawn at a different size.
// If the size already matches, img is returned unchanged.
func Resize(img *image.NRGBA, width, height int) *image.NRGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Scale resizes img by a uniform factor. Each dimension is rounded and kept
// at least 1 pixel.
func Scale(img *image.NRGBA, factor float64) *image.NRGBA {
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	return Resize(img, w, h)
}
