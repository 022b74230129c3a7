package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	intimage "github.com/gogpu/halftone/internal/image"
)

// readImage decodes the image file at path.
func readImage(path string) (*image.NRGBA, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	img, format, err := intimage.Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, format, nil
}

// writePNG encodes img as PNG at path, creating parent directories.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := intimage.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
