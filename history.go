package pixelcraft

// DefaultMaxDepth is the default bound on retained undoable commands.
const DefaultMaxDepth = 100

// History sequences commands against an image with bounded undo/redo.
//
// Executed commands are pushed onto the undo stack; undone commands
// move to the redo stack. New work clears the redo stack — a previously
// undone future cannot coexist with fresh edits. When the undo stack
// exceeds its bound, the oldest command is dropped without being
// undone: that edit becomes permanent.
//
// History owns the commands pushed into it. Callers must not retain or
// re-execute a command after handing it to Execute.
//
// History is not safe for concurrent use; callers serialize access
// along with the image the commands target.
type History struct {
	maxDepth int
	undo     []Command
	redo     []Command
}

// NewHistory creates an empty command history.
// The undo depth defaults to DefaultMaxDepth; see WithMaxDepth.
func NewHistory(opts ...HistoryOption) *History {
	o := defaultHistoryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &History{maxDepth: o.maxDepth}
}

// Execute runs the command and records it for undo.
// Any redoable commands are discarded, and if the undo stack exceeds
// the configured depth the oldest entry is evicted silently.
func (h *History) Execute(c Command) {
	if c == nil {
		return
	}
	c.Execute()

	h.undo = append(h.undo, c)
	h.redo = h.redo[:0]

	if len(h.undo) > h.maxDepth {
		evicted := h.undo[0]
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
		Logger().Debug("pixelcraft: history evicted oldest command",
			"description", evicted.Description(), "depth", h.maxDepth)
	}

	Logger().Debug("pixelcraft: executed", "description", c.Description(),
		"undo_depth", len(h.undo))
}

// Undo reverses the most recent command and moves it to the redo stack.
// Returns false (a no-op, not an error) when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	c := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	c.Undo()
	h.redo = append(h.redo, c)

	Logger().Debug("pixelcraft: undone", "description", c.Description())
	return true
}

// Redo re-executes the most recently undone command and moves it back
// to the undo stack. Returns false when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	c := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	c.Execute()
	h.undo = append(h.undo, c)

	Logger().Debug("pixelcraft: redone", "description", c.Description())
	return true
}

// CanUndo reports whether Undo would have an effect.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would have an effect.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of undoable commands.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of redoable commands.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// UndoDescription returns the description of the command Undo would
// reverse, and whether one exists.
func (h *History) UndoDescription() (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	return h.undo[len(h.undo)-1].Description(), true
}

// RedoDescription returns the description of the command Redo would
// re-execute, and whether one exists.
func (h *History) RedoDescription() (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	return h.redo[len(h.redo)-1].Description(), true
}

// Clear drops both stacks without undoing anything, as when a document
// is closed or replaced.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
