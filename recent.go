package pixelcraft

import "golang.org/x/text/unicode/norm"

// DefaultRecentFilesMax is the default cap on retained recent paths.
const DefaultRecentFilesMax = 10

// RecentFiles is an ordered most-recent-first list of file paths with a
// configurable cap. Re-adding a known path moves it to the front rather
// than duplicating it. Paths are compared in NFC normalization so the
// same file reached via composed and decomposed Unicode spellings
// (common across macOS and Linux filesystems) collapses to one entry.
//
// RecentFiles is not safe for concurrent use.
type RecentFiles struct {
	max   int
	paths []string
}

// NewRecentFiles creates a recent-files list capped at max entries.
// Values below 1 fall back to DefaultRecentFilesMax.
func NewRecentFiles(max int) *RecentFiles {
	if max < 1 {
		max = DefaultRecentFilesMax
	}
	return &RecentFiles{max: max}
}

// Add records path as the most recent entry, deduplicating by
// normalized comparison and truncating to the cap.
func (r *RecentFiles) Add(path string) {
	if path == "" {
		return
	}
	key := norm.NFC.String(path)

	// Move an existing entry to the front instead of duplicating.
	for i, p := range r.paths {
		if norm.NFC.String(p) == key {
			copy(r.paths[1:i+1], r.paths[:i])
			r.paths[0] = path
			return
		}
	}

	r.paths = append([]string{path}, r.paths...)
	if len(r.paths) > r.max {
		r.paths = r.paths[:r.max]
	}
}

// Remove deletes path from the list if present (normalized comparison).
func (r *RecentFiles) Remove(path string) {
	key := norm.NFC.String(path)
	for i, p := range r.paths {
		if norm.NFC.String(p) == key {
			r.paths = append(r.paths[:i], r.paths[i+1:]...)
			return
		}
	}
}

// Paths returns a copy of the list, most recent first.
func (r *RecentFiles) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Len returns the number of retained paths.
func (r *RecentFiles) Len() int {
	return len(r.paths)
}

// Clear drops all entries.
func (r *RecentFiles) Clear() {
	r.paths = nil
}
