package image

import (
	"image/color"
	"testing"
)

func TestResize(t *testing.T) {
	src := testNRGBA(10, 10)

	if got := Resize(src, 10, 10); got != src {
		t.Error("Resize to the same size should return the input")
	}

	got := Resize(src, 20, 5)
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 5 {
		t.Errorf("bounds = %v, want 20x5", got.Bounds())
	}
}

func TestResizeSolidColor(t *testing.T) {
	src := testNRGBA(4, 4)
	fill := color.NRGBA{R: 90, G: 120, B: 200, A: 255}
	for y := range 4 {
		for x := range 4 {
			src.SetNRGBA(x, y, fill)
		}
	}

	got := Resize(src, 9, 9)
	for y := range 9 {
		for x := range 9 {
			c := got.NRGBAAt(x, y)
			if absDiff(c.R, fill.R) > 1 || absDiff(c.G, fill.G) > 1 || absDiff(c.B, fill.B) > 1 || absDiff(c.A, fill.A) > 1 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, fill)
			}
		}
	}
}

func TestScale(t *testing.T) {
	src := testNRGBA(5, 3)

	got := Scale(src, 2)
	if got.Bounds().Dx() != 10 || got.Bounds().Dy() != 6 {
		t.Errorf("Scale(2) bounds = %v, want 10x6", got.Bounds())
	}

	got = Scale(src, 0.01)
	if got.Bounds().Dx() != 1 || got.Bounds().Dy() != 1 {
		t.Errorf("Scale(0.01) bounds = %v, want 1x1", got.Bounds())
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
