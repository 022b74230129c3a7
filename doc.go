// Package halftone renders a CMYK dot-screen stylization of a bitmap.
//
// # Overview
//
// The source pixels are first saturation and contrast corrected, then split
// into four ink intensities (cyan, magenta, yellow, black). For each ink a
// square lattice, rotated by the screen angle plus the ink's own offset, is
// laid over the image. Every lattice point inside the image samples the ink
// intensity under it and draws a round dot whose diameter and opacity follow
// that intensity. The four dot layers are multiplied onto white paper in
// C, M, Y, K order.
//
// # Quick Start
//
//	import "github.com/gogpu/halftone"
//
//	out, err := halftone.Process(pngBytes, width, height, halftone.DefaultOptions())
//	if err != nil {
//		// errors.Is(err, halftone.ErrDecode), ErrInvalidDimensions, ErrEncode
//	}
//
// For pixel-level access use [Render] with a [Pixmap]. Jitter is random by
// default; pass [WithSeed] for reproducible output.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, rotating the lattice from +X toward +Y
//
// # Concurrency
//
// Every call owns its buffers. The ink table is read-only, so any number of
// renders may run at once. [Tracker] helps callers drop results that were
// overtaken by a newer request for the same target.
package halftone

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
