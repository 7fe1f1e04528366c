package image

import "errors"

// Common errors for buffer operations.
var (
	// ErrOutOfBounds is returned when pixel coordinates are outside buffer bounds.
	// This is a programming error on the caller's side, never a recoverable
	// user-input condition.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// Buffer is a rectangular pixel buffer.
//
// Pixel data is stored row-major with a tight stride. The canonical
// format is RGBA8; decoded sources may carry narrower formats until
// the first Clone normalizes them (see Clone).
//
// Buffer provides no concurrency guarantees; callers serialize access.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// New creates a canonical RGBA8 buffer filled with the packed-ARGB
// fill value. Non-positive dimensions are clamped to 1 rather than
// rejected: construction always succeeds.
func New(width, height int, fill uint32) *Buffer {
	b := newWithFormat(width, height, FormatRGBA8)
	b.Fill(fill)
	return b
}

// newWithFormat creates an empty buffer of the given format with
// dimensions clamped to at least 1.
func newWithFormat(width, height int, format Format) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// InBounds reports whether (x, y) addresses a pixel inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// pixelOffset returns the byte offset of pixel (x, y), or -1 if the
// coordinates are out of bounds.
func (b *Buffer) pixelOffset(x, y int) int {
	if !b.InBounds(x, y) {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PackARGB packs 8-bit channels into a single 0xAARRGGBB value.
func PackARGB(r, g, bl, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

// UnpackARGB splits a packed 0xAARRGGBB value into 8-bit channels.
func UnpackARGB(v uint32) (r, g, bl, a uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)
}

// ARGBAt returns the packed-ARGB value of pixel (x, y).
// Grayscale formats expand to r=g=b, formats without alpha read as
// fully opaque. Returns ErrOutOfBounds for coordinates outside the buffer.
func (b *Buffer) ARGBAt(x, y int) (uint32, error) {
	offset := b.pixelOffset(x, y)
	if offset < 0 {
		return 0, ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		v := b.data[offset]
		return PackARGB(v, v, v, 255), nil
	case FormatGray16:
		v := b.data[offset] // high byte
		return PackARGB(v, v, v, 255), nil
	case FormatRGB8:
		return PackARGB(b.data[offset], b.data[offset+1], b.data[offset+2], 255), nil
	case FormatRGBA8:
		return PackARGB(b.data[offset], b.data[offset+1], b.data[offset+2], b.data[offset+3]), nil
	case FormatBGRA8:
		return PackARGB(b.data[offset+2], b.data[offset+1], b.data[offset], b.data[offset+3]), nil
	default:
		return 0, ErrInvalidFormat
	}
}

// SetARGB sets pixel (x, y) from a packed-ARGB value.
// Grayscale formats store the standard luminance of the color.
// Returns ErrOutOfBounds for coordinates outside the buffer.
func (b *Buffer) SetARGB(x, y int, v uint32) error {
	offset := b.pixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	r, g, bl, a := UnpackARGB(v)
	switch b.format {
	case FormatGray8:
		b.data[offset] = luminance(r, g, bl)
	case FormatGray16:
		gray := luminance(r, g, bl)
		b.data[offset] = gray
		b.data[offset+1] = gray
	case FormatRGB8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
	case FormatRGBA8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
		b.data[offset+3] = a
	case FormatBGRA8:
		b.data[offset] = bl
		b.data[offset+1] = g
		b.data[offset+2] = r
		b.data[offset+3] = a
	default:
		return ErrInvalidFormat
	}
	return nil
}

// luminance converts RGB channels to gray using standard weights:
// 0.299*R + 0.587*G + 0.114*B.
func luminance(r, g, bl uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(bl)*114) / 1000)
}

// Fill sets every pixel to the packed-ARGB value.
func (b *Buffer) Fill(v uint32) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			_ = b.SetARGB(x, y, v)
		}
	}
}

// Clone creates a fully independent copy of the buffer, normalized to
// the canonical RGBA8 layout regardless of the source format. Callers
// holding a clone never need to branch on the origin's pixel format.
func (b *Buffer) Clone() *Buffer {
	if b.format == FormatRGBA8 {
		data := make([]byte, len(b.data))
		copy(data, b.data)
		return &Buffer{
			data:   data,
			width:  b.width,
			height: b.height,
			stride: b.stride,
			format: b.format,
		}
	}

	// Expand narrower formats pixel by pixel.
	dst := newWithFormat(b.width, b.height, FormatRGBA8)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v, _ := b.ARGBAt(x, y)
			_ = dst.SetARGB(x, y, v)
		}
	}
	return dst
}

// Equal reports whether two buffers have identical dimensions and
// identical pixel content when both are read as ARGB.
func (b *Buffer) Equal(o *Buffer) bool {
	if o == nil || b.width != o.width || b.height != o.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			bv, _ := b.ARGBAt(x, y)
			ov, _ := o.ARGBAt(x, y)
			if bv != ov {
				return false
			}
		}
	}
	return true
}
