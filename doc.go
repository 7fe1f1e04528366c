// Package pixelcraft provides the editable-image core of the PixelCraft
// raster editor: a copy-on-write bitmap model with non-destructive view
// state, two-quality resampling, and a bounded undo/redo command history.
//
// # Overview
//
// An [Image] owns two pixel buffers: the original captured at load time
// (the quality source, never mutated) and the working buffer that edits
// and display reads go through. The working buffer shares the original's
// storage until the first destructive write, at which point it is
// duplicated (copy-on-write). Resize operations always resample from the
// original so repeated resizes never compound interpolation loss.
//
// # Quick Start
//
//	img := pixelcraft.New(640, 480)
//	hist := pixelcraft.NewHistory()
//
//	// Every destructive edit goes through the history.
//	hist.Execute(pixelcraft.NewPaintCommand(img, "pencil", []pixelcraft.PixelWrite{
//	    {X: 10, Y: 10, ARGB: 0xFF000000},
//	}))
//
//	hist.Undo() // the pixel is back
//	hist.Redo() // and gone again
//
// # View state
//
// Render scale, position and pixel-art mode are non-destructive: they
// never change pixel data or the modified flag. In pixel-art mode the
// render scale snaps to whole numbers and resampling switches to
// nearest-neighbor to preserve hard pixel edges.
//
// # Architecture
//
//   - Public API: Image, Command, History, RecentFiles, collaborators
//   - Internal: internal/image (buffer, codecs, resampler)
//
// All operations on one Image and its History are single-threaded by
// contract; a multi-threaded host must serialize them externally.
package pixelcraft
