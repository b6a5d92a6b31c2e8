// Package history records committed drawables with linear undo/redo.
package history

import (
	"log/slog"

	"scribble/internal/drawable"
	"scribble/internal/logging"
)

// History is the committed sequence plus the redo buffer. A new commit
// invalidates the redo path. Not safe for concurrent use.
type History struct {
	committed []drawable.Drawable
	// redo is kept as a stack: the last element is the most recently undone.
	redo   []drawable.Drawable
	logger *slog.Logger
}

type Option func(*History)

func WithLogger(l *slog.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

func New(opts ...Option) *History {
	h := &History{logger: logging.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commit appends d and clears the redo buffer. Cursor previews are never
// recorded.
func (h *History) Commit(d drawable.Drawable) {
	if d == nil {
		return
	}
	if _, ok := d.(*drawable.Cursor); ok {
		h.logger.Warn("refusing to commit cursor preview")
		return
	}
	h.committed = append(h.committed, d)
	clear(h.redo)
	h.redo = h.redo[:0]
	h.logger.Debug("commit", "committed", len(h.committed))
}

// Undo moves the last committed drawable to the head of the redo buffer.
func (h *History) Undo() (drawable.Drawable, bool) {
	if len(h.committed) == 0 {
		return nil, false
	}
	last := len(h.committed) - 1
	d := h.committed[last]
	h.committed[last] = nil
	h.committed = h.committed[:last]
	h.redo = append(h.redo, d)
	h.logger.Debug("undo", "committed", len(h.committed), "redo", len(h.redo))
	return d, true
}

// Redo moves the head of the redo buffer back to the end of committed.
func (h *History) Redo() (drawable.Drawable, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	last := len(h.redo) - 1
	d := h.redo[last]
	h.redo[last] = nil
	h.redo = h.redo[:last]
	h.committed = append(h.committed, d)
	h.logger.Debug("redo", "committed", len(h.committed), "redo", len(h.redo))
	return d, true
}

// Clear empties both sequences.
func (h *History) Clear() {
	clear(h.committed)
	clear(h.redo)
	h.committed = h.committed[:0]
	h.redo = h.redo[:0]
}

func (h *History) CanUndo() bool { return len(h.committed) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) Len() int      { return len(h.committed) }

// Committed returns the committed drawables in commit order.
func (h *History) Committed() []drawable.Drawable {
	out := make([]drawable.Drawable, len(h.committed))
	copy(out, h.committed)
	return out
}

// RedoBuffer returns the undone drawables, most recently undone first.
func (h *History) RedoBuffer() []drawable.Drawable {
	out := make([]drawable.Drawable, len(h.redo))
	for i, d := range h.redo {
		out[len(h.redo)-1-i] = d
	}
	return out
}

// Each calls fn for every committed drawable in commit order.
func (h *History) Each(fn func(drawable.Drawable)) {
	for _, d := range h.committed {
		fn(d)
	}
}
