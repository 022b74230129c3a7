package halftone

import (
	"math"

	"golang.org/x/image/math/f64"
)

// latticeMargin is the number of extra steps generated past the image
// diagonal on each side, so rotated grids still reach every corner.
const latticeMargin = 4

// Lattice is a square grid of dot centers rotated about the image center.
//
// Point (i, j) lies at center + i*(stepX, stepY) + j*(-stepY, stepX), where
// stepX = size*cos(angle) and stepY = size*sin(angle). Indices run over
// [-Steps, Steps] on both axes.
type Lattice struct {
	Width, Height int
	Size          float64
	Angle         float64 // degrees
	Steps         int

	m f64.Aff3 // (i, j) to image coordinates
}

// NewLattice builds the lattice for a width x height image with the given
// spacing and rotation in degrees. size must be positive.
func NewLattice(width, height int, size, angleDeg float64) Lattice {
	rad := angleDeg * math.Pi / 180
	stepX := size * math.Cos(rad)
	stepY := size * math.Sin(rad)
	cx, cy := float64(width)/2, float64(height)/2
	diag := math.Hypot(float64(width), float64(height))

	return Lattice{
		Width:  width,
		Height: height,
		Size:   size,
		Angle:  angleDeg,
		Steps:  int(math.Ceil(diag/size)) + latticeMargin,
		m: f64.Aff3{
			stepX, -stepY, cx,
			stepY, stepX, cy,
		},
	}
}

// Point returns the image coordinates of lattice point (i, j).
func (l Lattice) Point(i, j int) (x, y float64) {
	fi, fj := float64(i), float64(j)
	x = l.m[0]*fi + l.m[1]*fj + l.m[2]
	y = l.m[3]*fi + l.m[4]*fj + l.m[5]
	return x, y
}

// Nearest returns the indices of the lattice point closest to (x, y).
// The indices are not limited to [-Steps, Steps].
func (l Lattice) Nearest(x, y float64) (i, j int) {
	dx, dy := x-l.m[2], y-l.m[5]
	// The linear part is size times a rotation, so its inverse is the
	// transpose divided by size squared.
	s2 := l.Size * l.Size
	fi := (l.m[0]*dx + l.m[3]*dy) / s2
	fj := (l.m[1]*dx + l.m[4]*dy) / s2
	return int(math.Round(fi)), int(math.Round(fj))
}

// Len returns the number of index pairs the lattice spans.
func (l Lattice) Len() int {
	n := 2*l.Steps + 1
	return n * n
}

// Each calls fn for every lattice point within two spacings of the image,
// i outer and j inner, both ascending.
func (l Lattice) Each(fn func(x, y float64)) {
	margin := 2 * l.Size
	minX, maxX := -margin, float64(l.Width)+margin
	minY, maxY := -margin, float64(l.Height)+margin
	for i := -l.Steps; i <= l.Steps; i++ {
		for j := -l.Steps; j <= l.Steps; j++ {
			x, y := l.Point(i, j)
			if x < minX || x > maxX || y < minY || y > maxY {
				continue
			}
			fn(x, y)
		}
	}
}
