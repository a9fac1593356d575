// Package history provides snapshot undo/redo over whole layer-tree states.
package history

import (
	"github.com/lixenwraith/strata/layer"
)

// DefaultDepth bounds either stack when no explicit depth is given
const DefaultDepth = 50

// History holds two bounded stacks of deep-cloned state snapshots.
// Pushing a snapshot clears the redo stack; the oldest undo entry is
// discarded on overflow. One push per logical user action makes one undo
// reverse exactly one action.
type History struct {
	undo []*layer.State
	redo []*layer.State
	max  int
}

// New returns a history bounded to max snapshots per stack
func New(max int) *History {
	if max <= 0 {
		max = DefaultDepth
	}
	return &History{max: max}
}

// Push records a snapshot of s taken before a state-mutating operation
func (h *History) Push(s *layer.State) {
	h.undo = append(h.undo, layer.CloneState(s))
	if len(h.undo) > h.max {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// Undo exchanges current for the most recent snapshot. Returns false with
// no effect when nothing can be undone.
func (h *History) Undo(current *layer.State) (*layer.State, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, layer.CloneState(current))
	if len(h.redo) > h.max {
		h.redo = h.redo[1:]
	}
	return top, true
}

// Redo reverses the most recent Undo. Returns false with no effect when
// nothing can be redone.
func (h *History) Redo(current *layer.State) (*layer.State, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, layer.CloneState(current))
	if len(h.undo) > h.max {
		h.undo = h.undo[1:]
	}
	return top, true
}

// CanUndo reports whether an undo snapshot is available
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
