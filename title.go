package pixelcraft

import "path/filepath"

// AppName is the base application name used in window titles.
const AppName = "PixelCraft"

// DisplayTitle derives the window title from document state.
// No file and unmodified yields the bare application name; a file name
// is appended after a dash; unsaved changes append " *".
func DisplayTitle(fileName string, modified bool) string {
	title := AppName
	if fileName != "" {
		title += " - " + fileName
	}
	if modified {
		title += " *"
	}
	return title
}

// Title returns the display title for this image, using the base name
// of its backing file path.
func (m *Image) Title() string {
	name := ""
	if m.filePath != "" {
		name = filepath.Base(m.filePath)
	}
	return DisplayTitle(name, m.modified)
}
