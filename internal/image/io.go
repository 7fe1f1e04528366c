package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the requested encode format
	// is not one of png, jpeg, bmp.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Decode decodes an image from the reader, auto-detecting PNG, JPEG
// or BMP. BMP sniffing is registered by the bmp import.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodeBytes decodes an image from a byte slice, auto-detecting the format.
func DecodeBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the buffer as JPEG to the given writer with the
// given quality (clamped to 1-100).
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the buffer as BMP to the given writer.
func (b *Buffer) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// Encode dispatches to the named encoder. Format is one of
// "png", "jpeg" (alias "jpg"), "bmp", case-insensitive.
func (b *Buffer) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return b.EncodePNG(w)
	case "jpeg", "jpg":
		return b.EncodeJPEG(w, 90)
	case "bmp":
		return b.EncodeBMP(w)
	default:
		return fmt.Errorf("image: encode %q: %w", format, ErrUnsupportedFormat)
	}
}

// FromStdImage creates a Buffer from a standard library image.Image.
//
// Grayscale sources stay in FormatGray8 so memory estimates reflect
// the decoded footprint; everything else lands in canonical RGBA8.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Grayscale fast path: keep the 1-byte format.
	if gray, ok := img.(*image.Gray); ok {
		buf := newWithFormat(width, height, FormatGray8)
		for y := 0; y < height; y++ {
			srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.data[y*buf.stride:(y+1)*buf.stride], gray.Pix[srcStart:srcStart+width])
		}
		return buf
	}

	buf := newWithFormat(width, height, FormatRGBA8)

	// NRGBA fast path: identical byte layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.data[y*buf.stride:(y+1)*buf.stride], nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	// Generic path: convert through NRGBA so premultiplied sources
	// are unpremultiplied correctly.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetARGB(x, y, PackARGB(c.R, c.G, c.B, c.A))
		}
	}
	return buf
}

// ToStdImage converts the buffer to a standard library image.
// Returns *image.NRGBA for color formats, *image.Gray for Gray8,
// *image.Gray16 for Gray16.
func (b *Buffer) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := 0; y < b.height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+b.width], b.data[y*b.stride:(y+1)*b.stride])
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := 0; y < b.height; y++ {
			copy(gray16.Pix[y*gray16.Stride:y*gray16.Stride+b.width*2], b.data[y*b.stride:(y+1)*b.stride])
		}
		return gray16

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		if b.stride == nrgba.Stride {
			copy(nrgba.Pix, b.data)
		} else {
			for y := 0; y < b.height; y++ {
				copy(nrgba.Pix[y*nrgba.Stride:], b.data[y*b.stride:(y+1)*b.stride])
			}
		}
		return nrgba

	default:
		// RGB8, BGRA8 and anything else go through the ARGB readers.
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				v, _ := b.ARGBAt(x, y)
				r, g, bl, a := UnpackARGB(v)
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = r
				nrgba.Pix[off+1] = g
				nrgba.Pix[off+2] = bl
				nrgba.Pix[off+3] = a
			}
		}
		return nrgba
	}
}
