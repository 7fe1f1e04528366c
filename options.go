package pixelcraft

// Option configures an Image during creation.
//
// Example:
//
//	// Blank transparent canvas tied to a file path:
//	img := pixelcraft.New(64, 64,
//	    pixelcraft.WithFill(0x00000000),
//	    pixelcraft.WithFilePath("sprite.png"))
type Option func(*imageOptions)

// imageOptions holds optional configuration for Image creation.
type imageOptions struct {
	fill     uint32
	filePath string
}

// defaultImageOptions returns the default creation options:
// opaque white canvas, no backing file.
func defaultImageOptions() imageOptions {
	return imageOptions{fill: 0xFFFFFFFF}
}

// WithFill sets the packed-ARGB fill color for a blank canvas.
// The default is opaque white.
func WithFill(argb uint32) Option {
	return func(o *imageOptions) {
		o.fill = argb
	}
}

// WithFilePath associates the image with a backing file path at creation.
func WithFilePath(path string) Option {
	return func(o *imageOptions) {
		o.filePath = path
	}
}

// HistoryOption configures a History during creation.
type HistoryOption func(*historyOptions)

// historyOptions holds optional configuration for History creation.
type historyOptions struct {
	maxDepth int
}

// defaultHistoryOptions returns the default history options.
func defaultHistoryOptions() historyOptions {
	return historyOptions{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth bounds the number of undoable commands retained.
// Values below 1 fall back to the default. Once the bound is exceeded
// the oldest command is dropped and its edit becomes permanent.
func WithMaxDepth(n int) HistoryOption {
	return func(o *historyOptions) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}
