package halftone

import "errors"

// Errors returned by Render and Process. All of them are terminal for the
// call: no partial output is produced.
var (
	// ErrDecode is returned when the input bytes cannot be decoded as an image.
	ErrDecode = errors.New("halftone: decode failed")

	// ErrEncode is returned when the rendered image cannot be encoded.
	ErrEncode = errors.New("halftone: encode failed")

	// ErrInvalidDimensions is returned for a zero or negative width or
	// height, or a pixel buffer whose length does not match them.
	ErrInvalidDimensions = errors.New("halftone: invalid dimensions")

	// ErrInvalidOptions is returned when the dot size is not positive.
	ErrInvalidOptions = errors.New("halftone: invalid options")
)
