package halftone

import (
	"math"
	"testing"
)

func TestRGBA8(t *testing.T) {
	c := RGBA8(0, 255, 51, 0.95)
	if c.R != 0 || c.G != 1 || math.Abs(c.B-0.2) > 1e-9 || c.A != 0.95 {
		t.Errorf("RGBA8(0,255,51,0.95) = %+v", c)
	}
}

func TestRGBABytes(t *testing.T) {
	tests := []struct {
		name           string
		c              RGBA
		wr, wg, wb, wa uint8
	}{
		{"white", White, 255, 255, 255, 255},
		{"black", RGB(0, 0, 0), 0, 0, 0, 255},
		{"transparent", RGBA{}, 0, 0, 0, 0},
		{"half", RGBA{0.5, 0.5, 0.5, 0.5}, 128, 128, 128, 128},
		{"out of range", RGBA{-1, 2, 0, 1}, 0, 255, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.bytes()
			if r != tt.wr || g != tt.wg || b != tt.wb || a != tt.wa {
				t.Errorf("bytes() = (%d,%d,%d,%d), want (%d,%d,%d,%d)", r, g, b, a, tt.wr, tt.wg, tt.wb, tt.wa)
			}
		})
	}
}

func TestPremultipliedBytes(t *testing.T) {
	r, g, b, a := RGBA{1, 0, 1, 0.5}.premultipliedBytes()
	if r != 128 || g != 0 || b != 128 || a != 128 {
		t.Errorf("premultipliedBytes() = (%d,%d,%d,%d), want (128,0,128,128)", r, g, b, a)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGBA8(255, 255, 0, 0.9).WithAlpha(0.5)
	if math.Abs(c.A-0.45) > 1e-12 {
		t.Errorf("WithAlpha(0.5).A = %f, want 0.45", c.A)
	}
}

func TestInkColorsAreRGBA(t *testing.T) {
	// The Channel constants share names with colors elsewhere; the ink
	// table must keep its own RGBA values.
	var ink RGBA = Black.Config().Ink
	if r, g, b, a := ink.bytes(); r != 0 || g != 0 || b != 0 || a != 242 {
		t.Errorf("black ink bytes = (%d,%d,%d,%d), want (0,0,0,242)", r, g, b, a)
	}
	if White != RGB(1, 1, 1) {
		t.Errorf("White = %+v", White)
	}
}
