package halftone

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, pm *Pixmap) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, pm.ToImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img
}

func TestProcess(t *testing.T) {
	in := encodePNG(t, gradientPixmap(40, 30))
	out, err := Process(in, 40, 30, DefaultOptions(), WithSeed(1))
	if err != nil {
		t.Fatalf("Process() = %v", err)
	}
	img := decodePNG(t, out)
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("bounds = %v, want 40x30", img.Bounds())
	}
}

func TestProcessResamples(t *testing.T) {
	// A selection exported at 2x is rendered at its on-canvas size.
	in := encodePNG(t, gradientPixmap(80, 60))
	out, err := Process(in, 40, 30, DefaultOptions())
	if err != nil {
		t.Fatalf("Process() = %v", err)
	}
	if b := decodePNG(t, out).Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", b)
	}
}

func TestProcessJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gradientPixmap(16, 16).ToImage(), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := Process(buf.Bytes(), 16, 16, DefaultOptions()); err != nil {
		t.Errorf("Process(jpeg) = %v", err)
	}
}

func TestProcessErrors(t *testing.T) {
	valid := encodePNG(t, solidPixmap(4, 4, 0, 0, 0))
	bad := DefaultOptions()
	bad.Size = 0

	tests := []struct {
		name   string
		data   []byte
		w, h   int
		opts   Options
		target error
	}{
		{"zero width", valid, 0, 4, DefaultOptions(), ErrInvalidDimensions},
		{"negative height", valid, 4, -4, DefaultOptions(), ErrInvalidDimensions},
		{"garbage", []byte("definitely not an image"), 4, 4, DefaultOptions(), ErrDecode},
		{"empty", nil, 4, 4, DefaultOptions(), ErrDecode},
		{"truncated png", valid[:len(valid)/2], 4, 4, DefaultOptions(), ErrDecode},
		{"zero size", valid, 4, 4, bad, ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Process(tt.data, tt.w, tt.h, tt.opts)
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
			if out != nil {
				t.Error("expected no output on error")
			}
		})
	}
}

func TestHandle(t *testing.T) {
	tr := NewTracker()
	req := Request{
		Ticket:  tr.Begin("node-1"),
		Data:    encodePNG(t, gradientPixmap(10, 10)),
		Width:   10,
		Height:  10,
		Options: DefaultOptions(),
	}
	resp, err := Handle(req, WithSeed(2))
	if err != nil {
		t.Fatalf("Handle() = %v", err)
	}
	if resp.Ticket != req.Ticket || resp.Width != 10 || resp.Height != 10 || len(resp.Data) == 0 {
		t.Errorf("response = %+v", resp)
	}
	if !tr.Accept(resp.Ticket) {
		t.Error("current ticket rejected")
	}

	req.Width = 0
	resp, err = Handle(req)
	if !errors.Is(err, ErrInvalidDimensions) || resp.Data != nil || resp.Ticket != req.Ticket {
		t.Errorf("Handle(width 0) = %+v, %v", resp, err)
	}
}
