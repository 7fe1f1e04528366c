package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Mode selects the resampling quality.
type Mode uint8

const (
	// ModePixelArt selects nearest-neighbor sampling with no smoothing.
	// Preserves hard pixel edges; intended for integral scale factors.
	ModePixelArt Mode = iota

	// ModePhotographic selects smooth bicubic (Catmull-Rom)
	// interpolation for continuous-tone images.
	ModePhotographic
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePixelArt:
		return "PixelArt"
	case ModePhotographic:
		return "Photographic"
	default:
		return "Unknown"
	}
}

// scaler returns the x/image scaler implementing this mode.
func (m Mode) scaler() draw.Scaler {
	if m == ModePixelArt {
		return draw.NearestNeighbor
	}
	return draw.CatmullRom
}

// Resample scales src to the given dimensions using the given mode and
// returns a new canonical RGBA8 buffer. Target dimensions are clamped
// to at least 1.
//
// The result never aliases src: when the target dimensions equal the
// source's, the source is duplicated bit-exactly instead of refiltered,
// which keeps repeated same-size calls lossless while still honoring
// the caller's copy-on-write contract.
func Resample(src *Buffer, width, height int, mode Mode) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if width == src.Width() && height == src.Height() {
		return src.Clone()
	}

	srcImg := src.ToStdImage()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	mode.scaler().Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	return FromStdImage(dst)
}
