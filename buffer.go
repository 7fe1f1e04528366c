package pixelcraft

import (
	"io"

	intImage "github.com/pixelcraft/pixelcraft/internal/image"
)

// Buffer is a public alias for the internal pixel buffer.
// It represents a row-major grid of packed-ARGB pixels with immutable
// dimensions and no aliasing between logically distinct buffers.
type Buffer = intImage.Buffer

// ResampleMode selects the resampling quality for scale operations.
type ResampleMode = intImage.Mode

// Resampling modes.
const (
	// ResamplePixelArt uses nearest-neighbor sampling with no smoothing.
	ResamplePixelArt = intImage.ModePixelArt

	// ResamplePhotographic uses smooth bicubic interpolation.
	ResamplePhotographic = intImage.ModePhotographic
)

// PixelFormat represents a pixel storage format.
type PixelFormat = intImage.Format

// Pixel formats.
const (
	FormatGray8  = intImage.FormatGray8
	FormatGray16 = intImage.FormatGray16
	FormatRGB8   = intImage.FormatRGB8
	FormatRGBA8  = intImage.FormatRGBA8
	FormatBGRA8  = intImage.FormatBGRA8
)

// ErrOutOfBounds is returned for pixel access outside the image bounds.
var ErrOutOfBounds = intImage.ErrOutOfBounds

// NewBuffer creates a pixel buffer filled with the packed-ARGB value.
// Non-positive dimensions are clamped to 1.
func NewBuffer(width, height int, fill uint32) *Buffer {
	return intImage.New(width, height, fill)
}

// Resample scales src to the given dimensions and returns a new buffer;
// the result never aliases src.
func Resample(src *Buffer, width, height int, mode ResampleMode) *Buffer {
	return intImage.Resample(src, width, height, mode)
}

// DecodeBuffer decodes PNG, JPEG or BMP bytes into a pixel buffer.
// Most callers want [Decode], which recovers from malformed input.
func DecodeBuffer(data []byte) (*Buffer, error) {
	return intImage.DecodeBytes(data)
}

// EncodeBuffer encodes a buffer to the named format ("png", "jpeg", "bmp").
func EncodeBuffer(w io.Writer, b *Buffer, format string) error {
	return b.Encode(w, format)
}

// PackARGB packs 8-bit channels into a single 0xAARRGGBB value.
func PackARGB(r, g, b, a uint8) uint32 {
	return intImage.PackARGB(r, g, b, a)
}

// UnpackARGB splits a packed 0xAARRGGBB value into 8-bit channels.
func UnpackARGB(v uint32) (r, g, b, a uint8) {
	return intImage.UnpackARGB(v)
}
