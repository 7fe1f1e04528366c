// Package image provides the pixel buffer primitives for pixelcraft:
// a row-major ARGB buffer with duplication and fill operations, codecs
// for PNG/JPEG/BMP, and the two-quality resampler.
package image

// Format represents a pixel storage format.
//
// FormatRGBA8 is the canonical working format; the others describe
// decoded sources that have not yet been written to. Buffer.Clone
// always normalizes its result to FormatRGBA8.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel).
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel). This is the
	// canonical format for all editing operations.
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel). Common for
	// Windows-originated bitmaps.
	FormatBGRA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:  {BytesPerPixel: 1, Channels: 1, HasAlpha: false},
	FormatGray16: {BytesPerPixel: 2, Channels: 1, HasAlpha: false},
	FormatRGB8:   {BytesPerPixel: 3, Channels: 3, HasAlpha: false},
	FormatRGBA8:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
	FormatBGRA8:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
// Unknown formats return a zero FormatInfo; callers that need a size
// estimate fall back to measuring the underlying storage directly.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format,
// or 0 for unknown formats.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}
