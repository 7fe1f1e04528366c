package pixelcraft

import (
	"encoding/binary"

	"github.com/klauspost/compress/zstd"
)

// PixelWrite is one pixel assignment within a paint command.
type PixelWrite struct {
	X, Y int
	ARGB uint32
}

// Snapshot codec shared by all paint commands. The encoder and decoder
// are stateless in EncodeAll/DecodeAll mode and safe to reuse.
var (
	snapshotEnc, _ = zstd.NewWriter(nil)
	snapshotDec, _ = zstd.NewReader(nil)
)

// pixelWriteSize is the encoded size of one PixelWrite record:
// x, y as int32 plus the packed-ARGB value.
const pixelWriteSize = 12

// compressWrites serializes pixel writes and compresses them.
// Undo history retains these compressed snapshots instead of raw pixel
// slices so bounded-depth history memory scales with compressed edit
// size, not canvas size.
func compressWrites(writes []PixelWrite) []byte {
	raw := make([]byte, 0, len(writes)*pixelWriteSize)
	var rec [pixelWriteSize]byte
	for _, w := range writes {
		binary.LittleEndian.PutUint32(rec[0:4], uint32(int32(w.X)))
		binary.LittleEndian.PutUint32(rec[4:8], uint32(int32(w.Y)))
		binary.LittleEndian.PutUint32(rec[8:12], w.ARGB)
		raw = append(raw, rec[:]...)
	}
	return snapshotEnc.EncodeAll(raw, nil)
}

// decompressWrites reverses compressWrites. A snapshot that fails to
// decode yields nil; snapshots only ever come from compressWrites, so
// this is a defect path, not an expected condition.
func decompressWrites(blob []byte) []PixelWrite {
	raw, err := snapshotDec.DecodeAll(blob, nil)
	if err != nil {
		Logger().Warn("pixelcraft: corrupt paint snapshot", "error", err)
		return nil
	}
	writes := make([]PixelWrite, 0, len(raw)/pixelWriteSize)
	for off := 0; off+pixelWriteSize <= len(raw); off += pixelWriteSize {
		writes = append(writes, PixelWrite{
			X:    int(int32(binary.LittleEndian.Uint32(raw[off : off+4]))),
			Y:    int(int32(binary.LittleEndian.Uint32(raw[off+4 : off+8]))),
			ARGB: binary.LittleEndian.Uint32(raw[off+8 : off+12]),
		})
	}
	return writes
}

// PaintCommand applies a batch of pixel writes to one image.
//
// The first Execute reads the prior value of every touched pixel and
// retains both the before and after states as compressed snapshots,
// along with the prior modified flag. Undo restores the before snapshot
// and the flag bit-exactly; re-executing replays the after snapshot.
type PaintCommand struct {
	img  *Image
	desc string

	// pending holds the requested writes until the first Execute
	// captures snapshots and discards it.
	pending []PixelWrite

	before       []byte
	after        []byte
	empty        bool
	prevModified bool
	captured     bool
}

// NewPaintCommand creates a paint command for the given writes.
// Writes outside the image's current bounds are dropped up front, so
// Execute and Undo deal only in valid coordinates.
func NewPaintCommand(img *Image, desc string, writes []PixelWrite) *PaintCommand {
	valid := make([]PixelWrite, 0, len(writes))
	for _, w := range writes {
		if w.X >= 0 && w.X < img.Width() && w.Y >= 0 && w.Y < img.Height() {
			valid = append(valid, w)
		}
	}
	return &PaintCommand{img: img, desc: desc, pending: valid, empty: len(valid) == 0}
}

// Execute applies the writes, capturing before-state on the first run.
// A command whose writes were all out of bounds is a recorded no-op:
// it enters history but changes nothing, not even the modified flag.
func (c *PaintCommand) Execute() {
	if c.empty {
		return
	}
	if !c.captured {
		beforeWrites := make([]PixelWrite, len(c.pending))
		for i, w := range c.pending {
			v, _ := c.img.PixelAt(w.X, w.Y)
			beforeWrites[i] = PixelWrite{X: w.X, Y: w.Y, ARGB: v}
		}
		c.prevModified = c.img.IsModified()
		c.before = compressWrites(beforeWrites)
		c.after = compressWrites(c.pending)
		c.captured = true
		c.pending = nil
	}

	c.img.applyPixels(decompressWrites(c.after))
	c.img.setModified(true)
}

// Undo restores the captured pixel values and the prior modified flag.
func (c *PaintCommand) Undo() {
	if c.empty {
		return
	}
	c.img.applyPixels(decompressWrites(c.before))
	c.img.setModified(c.prevModified)
}

// Description implements Command.
func (c *PaintCommand) Description() string { return c.desc }

func (*PaintCommand) isCommand() {}
