// Package image decodes and encodes the bitmaps exchanged with the halftone
// renderer.
//
// Decoding accepts any format registered with the standard image package:
// PNG, JPEG and GIF from the standard library, and BMP, TIFF and WebP from
// golang.org/x/image. Encoding always produces PNG, the format the host
// exports and uploads.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Info describes an encoded image without decoding its pixels.
type Info struct {
	Format string
	Width  int
	Height int
}

// Probe reads the image header and reports its format and dimensions.
func Probe(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmptyData
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, ErrUnsupportedFormat
		}
		return Info{}, fmt.Errorf("image: decode config: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Decode decodes an image from a byte slice, auto-detecting the format.
// The result is always straight-alpha NRGBA with its origin at (0, 0).
func Decode(data []byte) (*image.NRGBA, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes an image from the given reader, auto-detecting the format.
func DecodeReader(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return ToNRGBA(img), format, nil
}

// ToNRGBA converts any image to NRGBA with its origin at (0, 0).
// An *image.NRGBA that already satisfies this is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Fast path for NRGBA images with an offset origin.
	if n, ok := img.(*image.NRGBA); ok {
		for y := range bounds.Dy() {
			srcStart := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], n.Pix[srcStart:srcStart+bounds.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// EncodePNG encodes the image as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodePNGBytes encodes the image as PNG and returns the bytes.
func EncodePNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
