package halftone

import (
	"fmt"

	intimage "github.com/gogpu/halftone/internal/image"
)

// Process decodes an encoded bitmap, renders its halftone and returns it
// PNG-encoded.
//
// The decoded image is resampled to width x height when its own size
// differs, so a host that exported a selection at 2x can request the
// on-canvas size. Errors wrap ErrInvalidDimensions, ErrDecode,
// ErrInvalidOptions or ErrEncode. No output is returned with an error.
func Process(data []byte, width, height int, opts Options, ropts ...RenderOption) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	img, format, err := intimage.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		Logger().Debug("halftone: resampling input",
			"format", format,
			"from", b.Size(),
			"to", fmt.Sprintf("%dx%d", width, height))
		img = intimage.Resize(img, width, height)
	}

	res, err := Render(FromImage(img), opts, ropts...)
	if err != nil {
		return nil, err
	}

	out, err := intimage.EncodePNGBytes(res.Image.ToImage())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return out, nil
}

// Request is one halftone job addressed to a target, typically the id of
// the selected node in a host document.
type Request struct {
	Ticket  Ticket
	Data    []byte
	Width   int
	Height  int
	Options Options
}

// Response carries the encoded halftone back with the request's ticket.
type Response struct {
	Ticket Ticket
	Data   []byte
	Width  int
	Height int
}

// Handle runs Process for req. The ticket is copied to the response so the
// caller can check it with Tracker.Accept before applying the result.
func Handle(req Request, ropts ...RenderOption) (Response, error) {
	out, err := Process(req.Data, req.Width, req.Height, req.Options, ropts...)
	if err != nil {
		return Response{Ticket: req.Ticket}, fmt.Errorf("halftone: %s: %w", req.Ticket, err)
	}
	return Response{
		Ticket: req.Ticket,
		Data:   out,
		Width:  req.Width,
		Height: req.Height,
	}, nil
}
