package pixelcraft

import "math"

// MinRenderScale is the lower bound for the render scale. The scale can
// never drop below it, in or out of pixel-art mode.
const MinRenderScale = 0.01

// SetRenderScale sets the display zoom factor. The value is clamped to
// at least MinRenderScale; in pixel-art mode it then snaps up to a
// whole number (minimum 1) so scaled pixels stay square on screen.
//
// Purely a view-state write: pixel data, the modified flag and the
// display cache are untouched.
func (m *Image) SetRenderScale(scale float64) {
	if scale < MinRenderScale {
		scale = MinRenderScale
	}
	if m.pixelArtMode {
		scale = snapScale(scale)
	}
	m.renderScale = scale
}

// RenderScale returns the current display zoom factor.
func (m *Image) RenderScale() float64 {
	return m.renderScale
}

// snapScale rounds a scale up to the nearest whole number, minimum 1.
func snapScale(scale float64) float64 {
	return math.Max(1, math.Ceil(scale))
}

// SetPosition sets the display offset. Unconditional view-state write
// with the same non-destructive guarantee as SetRenderScale.
func (m *Image) SetPosition(x, y float64) {
	m.posX = x
	m.posY = y
}

// Position returns the current display offset.
func (m *Image) Position() (x, y float64) {
	return m.posX, m.posY
}

// SetPixelArtMode switches between pixel-art rendering (nearest-neighbor
// resampling, integer-snapped scale) and photographic rendering.
// Enabling the mode re-snaps the current render scale. Non-destructive.
func (m *Image) SetPixelArtMode(on bool) {
	m.pixelArtMode = on
	if on {
		m.renderScale = snapScale(m.renderScale)
	}
}

// PixelArtMode reports whether pixel-art rendering is active.
func (m *Image) PixelArtMode() bool {
	return m.pixelArtMode
}
