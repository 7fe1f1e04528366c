package pixelcraft

// Command is a reversible unit of work over one Image.
//
// Execute performs the edit and captures whatever before-state an exact
// Undo needs. Undo restores that captured state verbatim, never a
// recomputed inverse. Redo is re-running Execute; every command keeps
// executing, undoing and redoing idempotent, so N undo/redo pairs leave
// the image observably identical to a single Execute.
//
// The set of commands is closed: only the variants defined in this
// package implement the interface.
type Command interface {
	// Execute performs the edit, capturing before-state for Undo.
	Execute()

	// Undo restores the exact state captured at Execute time.
	Undo()

	// Description returns a human-readable label for history display.
	Description() string

	// isCommand seals the interface to this package's variants.
	isCommand()
}

// Zoom limits for the zoom commands.
const (
	// MinZoom is the smallest zoom factor a zoom command produces.
	MinZoom = 0.01

	// MaxZoom is the largest zoom factor a zoom command produces.
	MaxZoom = 32.0

	// ZoomStep is the multiplier applied per zoom-in (divisor per zoom-out).
	ZoomStep = 2.0
)

// ZoomCommand multiplies the image's render scale by a fixed factor,
// clamped to [MinZoom, MaxZoom]. Undo writes the previous scalar back
// verbatim, so repeated undo/redo cycles accumulate no floating-point
// drift. A command whose clamped result equals the pre-operation value
// still records itself in history; it just has no observable effect.
type ZoomCommand struct {
	img    *Image
	factor float64
	prev   float64
	desc   string
}

// NewZoomInCommand returns a command that zooms img in by one step.
func NewZoomInCommand(img *Image) *ZoomCommand {
	return &ZoomCommand{img: img, factor: ZoomStep, desc: "Zoom In"}
}

// NewZoomOutCommand returns a command that zooms img out by one step.
func NewZoomOutCommand(img *Image) *ZoomCommand {
	return &ZoomCommand{img: img, factor: 1 / ZoomStep, desc: "Zoom Out"}
}

// Execute applies the zoom step.
func (c *ZoomCommand) Execute() {
	c.prev = c.img.RenderScale()
	next := c.prev * c.factor
	if next < MinZoom {
		next = MinZoom
	}
	if next > MaxZoom {
		next = MaxZoom
	}
	c.img.SetRenderScale(next)
	if c.img.RenderScale() != c.prev {
		Logger().Debug("pixelcraft: zoom", "scale", c.img.RenderScale())
	}
}

// Undo restores the pre-zoom scale.
func (c *ZoomCommand) Undo() {
	c.img.SetRenderScale(c.prev)
}

// Description implements Command.
func (c *ZoomCommand) Description() string { return c.desc }

func (*ZoomCommand) isCommand() {}

// PanCommand moves the image's display offset to an absolute position.
type PanCommand struct {
	img          *Image
	x, y         float64
	prevX, prevY float64
}

// NewPanCommand returns a command that pans img to (x, y).
func NewPanCommand(img *Image, x, y float64) *PanCommand {
	return &PanCommand{img: img, x: x, y: y}
}

// Execute applies the pan.
func (c *PanCommand) Execute() {
	c.prevX, c.prevY = c.img.Position()
	c.img.SetPosition(c.x, c.y)
}

// Undo restores the previous position.
func (c *PanCommand) Undo() {
	c.img.SetPosition(c.prevX, c.prevY)
}

// Description implements Command.
func (*PanCommand) Description() string { return "Pan" }

func (*PanCommand) isCommand() {}

// PixelArtModeCommand toggles pixel-art rendering. Enabling the mode
// may snap the render scale, so the previous scale is captured too and
// restored verbatim on Undo.
type PixelArtModeCommand struct {
	img       *Image
	on        bool
	prevOn    bool
	prevScale float64
}

// NewPixelArtModeCommand returns a command that sets img's pixel-art
// mode to on.
func NewPixelArtModeCommand(img *Image, on bool) *PixelArtModeCommand {
	return &PixelArtModeCommand{img: img, on: on}
}

// Execute applies the mode change.
func (c *PixelArtModeCommand) Execute() {
	c.prevOn = c.img.PixelArtMode()
	c.prevScale = c.img.RenderScale()
	c.img.SetPixelArtMode(c.on)
}

// Undo restores the previous mode, then the previous scale.
func (c *PixelArtModeCommand) Undo() {
	c.img.SetPixelArtMode(c.prevOn)
	c.img.SetRenderScale(c.prevScale)
}

// Description implements Command.
func (c *PixelArtModeCommand) Description() string {
	if c.on {
		return "Enable Pixel Art Mode"
	}
	return "Disable Pixel Art Mode"
}

func (*PixelArtModeCommand) isCommand() {}
