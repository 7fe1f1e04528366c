package pixelcraft

import (
	"fmt"
	"testing"
)

func TestRecentFilesOrder(t *testing.T) {
	r := NewRecentFiles(10)
	r.Add("a.png")
	r.Add("b.png")
	r.Add("c.png")

	want := []string{"c.png", "b.png", "a.png"}
	got := r.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Paths() = %v, want %v", got, want)
		}
	}
}

func TestRecentFilesDedupeMovesToFront(t *testing.T) {
	r := NewRecentFiles(10)
	r.Add("a.png")
	r.Add("b.png")
	r.Add("a.png")

	got := r.Paths()
	if len(got) != 2 {
		t.Fatalf("Len = %d, want 2", len(got))
	}
	if got[0] != "a.png" || got[1] != "b.png" {
		t.Errorf("Paths() = %v, want [a.png b.png]", got)
	}
}

func TestRecentFilesCap(t *testing.T) {
	r := NewRecentFiles(3)
	for i := 0; i < 5; i++ {
		r.Add(fmt.Sprintf("%d.png", i))
	}
	got := r.Paths()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}
	if got[0] != "4.png" || got[2] != "2.png" {
		t.Errorf("Paths() = %v, want most-recent-first [4 3 2]", got)
	}
}

func TestRecentFilesDefaultCap(t *testing.T) {
	r := NewRecentFiles(0)
	for i := 0; i < 15; i++ {
		r.Add(fmt.Sprintf("%d.png", i))
	}
	if r.Len() != DefaultRecentFilesMax {
		t.Errorf("Len() = %d, want %d", r.Len(), DefaultRecentFilesMax)
	}
}

func TestRecentFilesUnicodeNormalization(t *testing.T) {
	// "é" composed (U+00E9) vs decomposed (e + U+0301) must dedupe.
	composed := "café.png"
	decomposed := "café.png"

	r := NewRecentFiles(10)
	r.Add(composed)
	r.Add(decomposed)

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (NFC-equal paths must dedupe)", r.Len())
	}
}

func TestRecentFilesRemoveClear(t *testing.T) {
	r := NewRecentFiles(10)
	r.Add("a.png")
	r.Add("b.png")

	r.Remove("a.png")
	if r.Len() != 1 {
		t.Fatalf("Len() = %d after Remove, want 1", r.Len())
	}
	r.Remove("missing.png") // no-op
	if r.Len() != 1 {
		t.Errorf("Len() = %d after removing a missing path, want 1", r.Len())
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", r.Len())
	}
}

func TestRecentFilesEmptyPathIgnored(t *testing.T) {
	r := NewRecentFiles(10)
	r.Add("")
	if r.Len() != 0 {
		t.Errorf("Len() = %d after adding empty path, want 0", r.Len())
	}
}

func TestRecentFilesPathsIsCopy(t *testing.T) {
	r := NewRecentFiles(10)
	r.Add("a.png")
	got := r.Paths()
	got[0] = "mutated"
	if r.Paths()[0] != "a.png" {
		t.Error("Paths() exposed internal storage")
	}
}
