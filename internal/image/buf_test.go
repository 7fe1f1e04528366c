package image

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"valid", 100, 50, 100, 50},
		{"1x1 minimum", 1, 1, 1, 1},
		{"zero width clamps", 0, 10, 1, 10},
		{"zero height clamps", 10, 0, 10, 1},
		{"negative clamps", -3, -7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.width, tt.height, 0xFFFFFFFF)
			if b.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", b.Width(), tt.wantWidth)
			}
			if b.Height() != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", b.Height(), tt.wantHeight)
			}
			if b.Format() != FormatRGBA8 {
				t.Errorf("Format() = %v, want RGBA8", b.Format())
			}
			if len(b.Data()) != tt.wantWidth*tt.wantHeight*4 {
				t.Errorf("len(Data()) = %d, want %d", len(b.Data()), tt.wantWidth*tt.wantHeight*4)
			}
		})
	}
}

func TestNewFill(t *testing.T) {
	b := New(4, 3, 0x80FF0010)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			v, err := b.ARGBAt(x, y)
			if err != nil {
				t.Fatalf("ARGBAt(%d, %d) error: %v", x, y, err)
			}
			if v != 0x80FF0010 {
				t.Errorf("ARGBAt(%d, %d) = %#08x, want 0x80FF0010", x, y, v)
			}
		}
	}
}

func TestPackUnpackARGB(t *testing.T) {
	v := PackARGB(0x12, 0x34, 0x56, 0x78)
	if v != 0x78123456 {
		t.Fatalf("PackARGB = %#08x, want 0x78123456", v)
	}
	r, g, bl, a := UnpackARGB(v)
	if r != 0x12 || g != 0x34 || bl != 0x56 || a != 0x78 {
		t.Errorf("UnpackARGB = (%#02x, %#02x, %#02x, %#02x), want (0x12, 0x34, 0x56, 0x78)", r, g, bl, a)
	}
}

func TestSetARGBRoundTrip(t *testing.T) {
	b := New(10, 10, 0)
	if err := b.SetARGB(3, 7, 0xCCAABB99); err != nil {
		t.Fatalf("SetARGB() error: %v", err)
	}
	v, err := b.ARGBAt(3, 7)
	if err != nil {
		t.Fatalf("ARGBAt() error: %v", err)
	}
	if v != 0xCCAABB99 {
		t.Errorf("ARGBAt() = %#08x, want 0xCCAABB99", v)
	}
}

func TestOutOfBounds(t *testing.T) {
	b := New(10, 10, 0)

	coords := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range coords {
		if _, err := b.ARGBAt(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ARGBAt(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
		if err := b.SetARGB(c.x, c.y, 0xFFFFFFFF); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetARGB(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := New(5, 5, 0xFF00FF00)
	c := b.Clone()

	if !b.Equal(c) {
		t.Fatal("clone is not pixel-identical to source")
	}

	// Mutating the clone must not affect the source.
	_ = c.SetARGB(2, 2, 0xFF0000FF)
	v, _ := b.ARGBAt(2, 2)
	if v != 0xFF00FF00 {
		t.Errorf("source pixel changed after clone mutation: %#08x", v)
	}
}

func TestCloneNormalizesFormat(t *testing.T) {
	src := newWithFormat(4, 4, FormatGray8)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_ = src.SetARGB(x, y, PackARGB(uint8(x*60), uint8(x*60), uint8(x*60), 255))
		}
	}

	c := src.Clone()
	if c.Format() != FormatRGBA8 {
		t.Fatalf("Clone() format = %v, want RGBA8", c.Format())
	}
	if !src.Equal(c) {
		t.Error("normalized clone differs from source content")
	}
	if c.ByteSize() != 4*4*4 {
		t.Errorf("clone ByteSize() = %d, want %d", c.ByteSize(), 4*4*4)
	}
}

func TestGrayLuminance(t *testing.T) {
	b := newWithFormat(1, 1, FormatGray8)
	// Pure green: luminance = 0.587 * 255 = 149.
	_ = b.SetARGB(0, 0, 0xFF00FF00)
	v, _ := b.ARGBAt(0, 0)
	r, g, bl, a := UnpackARGB(v)
	if r != g || g != bl {
		t.Fatalf("gray readback not neutral: (%d, %d, %d)", r, g, bl)
	}
	if g != 149 {
		t.Errorf("luminance = %d, want 149", g)
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestBGRAReadback(t *testing.T) {
	b := newWithFormat(1, 1, FormatBGRA8)
	_ = b.SetARGB(0, 0, 0x80112233)
	v, _ := b.ARGBAt(0, 0)
	if v != 0x80112233 {
		t.Errorf("BGRA round trip = %#08x, want 0x80112233", v)
	}
	// Stored byte order is B, G, R, A.
	d := b.Data()
	if d[0] != 0x33 || d[1] != 0x22 || d[2] != 0x11 || d[3] != 0x80 {
		t.Errorf("BGRA storage = % x, want 33 22 11 80", d)
	}
}
