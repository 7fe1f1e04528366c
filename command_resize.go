package pixelcraft

import "fmt"

// ResizeCommand resamples an image to new dimensions through the
// history. Execute hands the displaced working buffer to the command
// instead of cloning it, so undo is an exact, allocation-free swap —
// this is what makes undoing a resize affordable on large images.
type ResizeCommand struct {
	img           *Image
	width, height int

	prevWorking *Buffer
	prevShared  bool
	prevModi    bool
}

// NewResizeCommand returns a command that resizes img to
// width x height (each clamped to at least 1 on Execute).
func NewResizeCommand(img *Image, width, height int) *ResizeCommand {
	return &ResizeCommand{img: img, width: width, height: height}
}

// Execute captures the current working buffer, then resamples from the
// original at the requested size. Re-execution (redo) recaptures and
// resamples again; resampling from the never-mutated original makes
// the result deterministic across redo cycles.
func (c *ResizeCommand) Execute() {
	c.prevWorking = c.img.working
	c.prevShared = c.img.workingShared
	c.prevModi = c.img.modified

	c.img.Resize(c.width, c.height)
}

// Undo swaps the retained working buffer back and restores the prior
// modified flag.
func (c *ResizeCommand) Undo() {
	c.img.replaceWorking(c.prevWorking, c.prevShared)
	c.img.setModified(c.prevModi)
}

// Description implements Command.
func (c *ResizeCommand) Description() string {
	return fmt.Sprintf("Resize to %dx%d", c.width, c.height)
}

func (*ResizeCommand) isCommand() {}
