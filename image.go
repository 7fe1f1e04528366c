package pixelcraft

import (
	"image"

	intImage "github.com/pixelcraft/pixelcraft/internal/image"
)

// Image is an editable bitmap with copy-on-write buffer management.
//
// Image owns two pixel buffers. The original is captured at load or
// creation time and is conceptually read-only: it is the quality source
// every resample starts from. The working buffer is what edits mutate
// and display reads go through. After construction from decoded bytes,
// the working buffer shares the original's storage until the first
// destructive write duplicates it.
//
// View state (render scale, position, pixel-art mode) is
// non-destructive: it never alters pixel data, the modified flag, or
// the display cache.
//
// Image provides no internal locking. All operations on one Image
// execute to completion on a single logical thread; a multi-threaded
// host must serialize access behind a mutex or message queue.
type Image struct {
	original *Buffer
	working  *Buffer

	// workingShared marks that working still aliases original's
	// storage. The ownership tag, not pointer comparison, decides
	// when a write must duplicate first.
	workingShared bool

	modified bool

	// Non-destructive view state.
	renderScale  float64
	posX, posY   float64
	pixelArtMode bool

	// Memoized display representation of the working buffer, keyed on
	// a single dirty flag: pixel content changes invalidate it,
	// view-state changes do not.
	display      image.Image
	displayValid bool

	filePath  string
	listeners []ChangeListener
}

// New creates a blank canvas of the given size. Non-positive dimensions
// are clamped to 1. The canvas is filled opaque white unless WithFill
// overrides it; the working buffer starts as an independent duplicate
// of the original and the image reports unmodified.
func New(width, height int, opts ...Option) *Image {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	original := intImage.New(width, height, o.fill)
	return &Image{
		original:    original,
		working:     original.Clone(),
		renderScale: 1.0,
		filePath:    o.filePath,
	}
}

// Decode creates an Image from encoded bytes (PNG, JPEG or BMP).
//
// Construction always succeeds: malformed or unsupported bytes are
// recovered locally by substituting a 1x1 opaque white placeholder so
// the document stays in a valid state. The working buffer shares the
// decoded original's storage until the first destructive write.
func Decode(data []byte, opts ...Option) *Image {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	original, err := intImage.DecodeBytes(data)
	if err != nil {
		Logger().Warn("pixelcraft: decode failed, substituting placeholder",
			"error", err, "path", o.filePath)
		original = intImage.New(1, 1, 0xFFFFFFFF)
	}

	return &Image{
		original:      original,
		working:       original,
		workingShared: true,
		renderScale:   1.0,
		filePath:      o.filePath,
	}
}

// Width returns the working buffer's width in pixels.
func (m *Image) Width() int {
	return m.working.Width()
}

// Height returns the working buffer's height in pixels.
func (m *Image) Height() int {
	return m.working.Height()
}

// PixelAt returns the packed-ARGB value of working pixel (x, y).
// Returns ErrOutOfBounds for coordinates outside the image.
func (m *Image) PixelAt(x, y int) (uint32, error) {
	return m.working.ARGBAt(x, y)
}

// SetPixel writes a packed-ARGB value to working pixel (x, y).
// The first write since construction duplicates the shared buffer
// (copy-on-write). Marks the image modified and invalidates the
// display cache. Returns ErrOutOfBounds for coordinates outside the
// image, in which case nothing changes.
func (m *Image) SetPixel(x, y int, argb uint32) error {
	if !m.working.InBounds(x, y) {
		return ErrOutOfBounds
	}
	m.ensureUniqueWorking()
	_ = m.working.SetARGB(x, y, argb)
	m.displayValid = false
	m.setModified(true)
	return nil
}

// ensureUniqueWorking duplicates the working buffer if it still shares
// storage with the original. Every destructive operation calls this
// before its first write.
func (m *Image) ensureUniqueWorking() {
	if !m.workingShared {
		return
	}
	m.working = m.original.Clone()
	m.workingShared = false
}

// applyPixels writes a batch of pixels to the working buffer without
// touching the modified flag. Used by commands that manage the flag
// themselves so undo can restore its exact prior value.
func (m *Image) applyPixels(writes []PixelWrite) {
	if len(writes) == 0 {
		return
	}
	m.ensureUniqueWorking()
	for _, w := range writes {
		_ = m.working.SetARGB(w.X, w.Y, w.ARGB)
	}
	m.displayValid = false
}

// Resize resamples the image to the given dimensions (clamped to 1).
// A no-op when the working buffer already has the target size.
//
// Resampling always starts from the original buffer, never from a
// previously resampled working buffer, so repeated resizes do not
// compound interpolation loss. Pixel-art mode selects nearest-neighbor
// sampling; otherwise smooth bicubic is used. The original is never
// mutated.
func (m *Image) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == m.working.Width() && height == m.working.Height() {
		return
	}

	m.replaceWorking(intImage.Resample(m.original, width, height, m.resampleMode()), false)
	m.setModified(true)
	Logger().Debug("pixelcraft: resized", "width", width, "height", height,
		"mode", m.resampleMode().String())
}

// resampleMode maps the current view mode to a resampling quality.
func (m *Image) resampleMode() ResampleMode {
	if m.pixelArtMode {
		return ResamplePixelArt
	}
	return ResamplePhotographic
}

// replaceWorking swaps in a new working buffer and invalidates the
// display cache. Does not touch the modified flag.
func (m *Image) replaceWorking(buf *Buffer, shared bool) {
	m.working = buf
	m.workingShared = shared
	m.displayValid = false
}

// CopyPixelsFrom copies pixels from other over the intersection of both
// images' current dimensions. Writes go through SetPixel, so
// copy-on-write, the modified flag and cache invalidation all apply.
func (m *Image) CopyPixelsFrom(other *Image) {
	w := min(m.Width(), other.Width())
	h := min(m.Height(), other.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, _ := other.PixelAt(x, y)
			_ = m.SetPixel(x, y, v)
		}
	}
}

// DeepClone returns a fully independent copy of the image: duplicated
// original and working buffers and copied view state. Listeners are not
// carried over; the clone shares no ownership with the source.
func (m *Image) DeepClone() *Image {
	return &Image{
		original:     m.original.Clone(),
		working:      m.working.Clone(),
		modified:     m.modified,
		renderScale:  m.renderScale,
		posX:         m.posX,
		posY:         m.posY,
		pixelArtMode: m.pixelArtMode,
		filePath:     m.filePath,
	}
}

// DisplayImage returns a render-ready standard-library view of the
// working buffer. The result is memoized: it is recomputed only when
// pixel content has changed since the last call. View-state changes do
// not invalidate it; scale and offset are applied downstream by the
// renderer.
func (m *Image) DisplayImage() image.Image {
	if !m.displayValid || m.display == nil {
		m.display = m.working.ToStdImage()
		m.displayValid = true
	}
	return m.display
}

// SizeInBytes estimates the working buffer's memory footprint as
// width * height * bytesPerPixel from the pixel format. Unknown formats
// fall back to measuring the underlying storage. Advisory only.
func (m *Image) SizeInBytes() int {
	bpp := m.working.Format().BytesPerPixel()
	if bpp == 0 {
		return m.working.ByteSize()
	}
	return m.working.Width() * m.working.Height() * bpp
}

// IsModified reports whether the working buffer has diverged from the
// original since the last save checkpoint.
func (m *Image) IsModified() bool {
	return m.modified
}

// MarkSaved clears the modified flag, establishing a new save
// checkpoint. Notifies listeners if the flag flips.
func (m *Image) MarkSaved() {
	m.setModified(false)
}

// setModified updates the modified flag and notifies listeners after
// the change is committed. No notification fires when the value is
// unchanged.
func (m *Image) setModified(v bool) {
	if m.modified == v {
		return
	}
	m.modified = v
	m.notifyModifiedChanged(v)
}

// FilePath returns the backing file path, or "" when the image has no file.
func (m *Image) FilePath() string {
	return m.filePath
}

// SetFilePath associates the image with a backing file path and
// notifies listeners.
func (m *Image) SetFilePath(path string) {
	m.filePath = path
	m.notifyFileChanged(path)
}

// Replace swaps in a new pixel source wholesale, as when a file is
// opened into this document. The buffer becomes the new original, the
// working buffer shares it (copy-on-write re-armed), the modified flag
// clears, and listeners are notified after the swap is committed.
func (m *Image) Replace(buf *Buffer) {
	if buf == nil {
		return
	}
	m.original = buf
	m.replaceWorking(buf, true)
	m.setModified(false)
	m.notifyImageReplaced()
}
