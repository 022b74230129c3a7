package halftone

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestQuantizeOpacityLevels(t *testing.T) {
	levels := map[float64]bool{}
	for i := 0; i <= 1000; i++ {
		levels[math.Round(QuantizeOpacity(float64(i)/1000)*1e9)/1e9] = true
	}
	if len(levels) != opacityLevels {
		t.Fatalf("got %d distinct levels %v, want %d", len(levels), levels, opacityLevels)
	}
	for _, want := range []float64{0, 0.225, 0.45, 0.675, 0.9} {
		if !levels[want] {
			t.Errorf("level %v missing from %v", want, levels)
		}
	}
}

func TestQuantizeOpacityMonotone(t *testing.T) {
	prev := QuantizeOpacity(0)
	for i := 1; i <= 1000; i++ {
		curr := QuantizeOpacity(float64(i) / 1000)
		if curr < prev {
			t.Fatalf("QuantizeOpacity decreased at t=%v: %v < %v", float64(i)/1000, curr, prev)
		}
		prev = curr
	}
}

func TestQuantizeOpacityAtFloors(t *testing.T) {
	// The channel floors keep every dot at the first visible level or above.
	for _, ch := range Channels {
		if got := QuantizeOpacity(ch.Config().Floor / 255); got < 0.2 {
			t.Errorf("opacity at %v floor = %v, want >= 0.225", ch, got)
		}
	}
}

func TestDotDiameter(t *testing.T) {
	tests := []struct {
		size, t, want float64
	}{
		{10, 0, 3.2},
		{10, 0.4, 4.0},
		{10, 1, 10},
		{5, 0.5, 2.5},
	}
	for _, tt := range tests {
		if got := DotDiameter(tt.size, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DotDiameter(%v, %v) = %v, want %v", tt.size, tt.t, got, tt.want)
		}
	}
}

func TestDotDiameterMonotoneWithFloor(t *testing.T) {
	for _, size := range []float64{2, 5, 17, 32} {
		prev := DotDiameter(size, 0)
		for i := 0; i <= 255; i++ {
			d := DotDiameter(size, float64(i)/255)
			if d < 0.32*size-1e-9 {
				t.Fatalf("DotDiameter(%v, %d/255) = %v, below 0.32*size", size, i, d)
			}
			if d < prev {
				t.Fatalf("DotDiameter(%v) decreased at %d/255", size, i)
			}
			prev = d
		}
	}
}

func TestJitterDotBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const size, diameter = 10.0, 6.0
	for range 1000 {
		d, off := jitterDot(rng, diameter, size)
		if d < diameter*0.9-1e-9 || d >= diameter*1.1 {
			t.Fatalf("jittered diameter %v outside [%v, %v)", d, diameter*0.9, diameter*1.1)
		}
		if math.Abs(off) > size*positionJitter/2 {
			t.Fatalf("offset %v exceeds %v", off, size*positionJitter/2)
		}
	}
}
