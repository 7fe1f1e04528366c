package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// testPattern builds a small buffer with a distinct value per pixel.
func testPattern(w, h int) *Buffer {
	b := New(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = b.SetARGB(x, y, PackARGB(uint8(x*40), uint8(y*40), uint8((x+y)*20), 255))
		}
	}
	return b
}

func TestEncodeDecodePNG(t *testing.T) {
	src := testPattern(6, 4)

	var buf bytes.Buffer
	if err := src.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}

	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}
	if !src.Equal(got) {
		t.Error("PNG round trip altered pixel content")
	}
}

func TestEncodeDecodeBMP(t *testing.T) {
	// BMP has no alpha; use opaque pixels only.
	src := testPattern(5, 5)

	var buf bytes.Buffer
	if err := src.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP() error: %v", err)
	}

	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}
	if got.Width() != 5 || got.Height() != 5 {
		t.Fatalf("BMP round trip dimensions = %dx%d, want 5x5", got.Width(), got.Height())
	}
	if !src.Equal(got) {
		t.Error("BMP round trip altered pixel content")
	}
}

func TestEncodeDecodeJPEG(t *testing.T) {
	src := testPattern(8, 8)

	var buf bytes.Buffer
	if err := src.EncodeJPEG(&buf, 90); err != nil {
		t.Fatalf("EncodeJPEG() error: %v", err)
	}

	// JPEG is lossy; only dimensions are stable.
	got, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error: %v", err)
	}
	if got.Width() != 8 || got.Height() != 8 {
		t.Errorf("JPEG round trip dimensions = %dx%d, want 8x8", got.Width(), got.Height())
	}
}

func TestEncodeDispatch(t *testing.T) {
	src := testPattern(3, 3)

	for _, format := range []string{"png", "PNG", "jpeg", "jpg", "bmp"} {
		var buf bytes.Buffer
		if err := src.Encode(&buf, format); err != nil {
			t.Errorf("Encode(%q) error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Encode(%q) produced no output", format)
		}
	}

	var buf bytes.Buffer
	if err := src.Encode(&buf, "tiff"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(tiff) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeFailures(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("this is not an image")); err == nil {
		t.Error("DecodeBytes(garbage) succeeded, want error")
	}
}

func TestFromStdImageGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})

	buf := FromStdImage(gray)
	if buf.Format() != FormatGray8 {
		t.Fatalf("Format() = %v, want Gray8", buf.Format())
	}
	if buf.ByteSize() != 3*2 {
		t.Errorf("ByteSize() = %d, want 6", buf.ByteSize())
	}
	v, _ := buf.ARGBAt(1, 1)
	if v != PackARGB(200, 200, 200, 255) {
		t.Errorf("ARGBAt(1, 1) = %#08x, want opaque gray 200", v)
	}
}

func TestFromStdImageOffsetBounds(t *testing.T) {
	// Sub-images have non-zero Min; conversion must rebase to (0,0).
	nrgba := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	nrgba.SetNRGBA(5, 5, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	sub := nrgba.SubImage(image.Rect(4, 4, 8, 8))

	buf := FromStdImage(sub)
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", buf.Width(), buf.Height())
	}
	v, _ := buf.ARGBAt(1, 1)
	if v != PackARGB(9, 8, 7, 255) {
		t.Errorf("ARGBAt(1, 1) = %#08x, want pixel from source (5, 5)", v)
	}
}

func TestToStdImageAlpha(t *testing.T) {
	b := New(2, 2, 0)
	_ = b.SetARGB(0, 0, 0x80FF0000)

	img := b.ToStdImage()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("ToStdImage() = %T, want *image.NRGBA", img)
	}
	c := nrgba.NRGBAAt(0, 0)
	if c.R != 255 || c.A != 0x80 {
		t.Errorf("NRGBAAt(0, 0) = %+v, want half-transparent red", c)
	}
}
