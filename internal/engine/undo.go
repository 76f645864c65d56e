package engine

import "github.com/petrih/glaze/internal/grid"

// TrackerCapacity is the hard bound on each tracker-side collection: both
// undo/redo stacks and both replay queues hold at most this many actions.
const TrackerCapacity = 10000

// UndoTracker coordinates bounded undo/redo over opaque actions.
//
// An action lives in at most one of the two stacks at any time. Recording a
// fresh action does NOT clear the redo stack: a redo after an unrelated new
// action replays the old popped action. That matches the recorded-session
// semantics this engine exists to reproduce, so it is kept rather than
// replaced with conventional redo invalidation.
type UndoTracker struct {
	undo []PaintAction
	redo []PaintAction
}

// NewUndoTracker creates an empty tracker.
func NewUndoTracker() *UndoTracker {
	return &UndoTracker{
		undo: make([]PaintAction, 0, 64),
		redo: make([]PaintAction, 0, 64),
	}
}

// UndoDepth returns how many actions are currently undoable.
func (t *UndoTracker) UndoDepth() int { return len(t.undo) }

// RedoDepth returns how many actions are currently redoable.
func (t *UndoTracker) RedoDepth() int { return len(t.redo) }

// AddAction records a freshly applied action. A full undo stack silently
// drops the action; that is a deliberate hard cap, not an error.
func (t *UndoTracker) AddAction(a PaintAction) {
	if len(t.undo) >= TrackerCapacity {
		return
	}
	t.undo = append(t.undo, a)
}

// Undo pops the most recent action, moves it to the redo stack, and applies
// its inverse to g. Returns (nil, false) when there is nothing to undo, or
// when the redo stack is at capacity: the move between stacks is all or
// nothing, so a full destination refuses the whole operation.
func (t *UndoTracker) Undo(g *grid.Grid) (PaintAction, bool) {
	if len(t.undo) == 0 || len(t.redo) >= TrackerCapacity {
		return nil, false
	}
	a := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	t.redo = append(t.redo, a)
	a.UndoApply(g)
	return a, true
}

// Redo pops the most recently undone action, moves it back to the undo
// stack, and applies its forward effect to g. Returns (nil, false) when
// there is nothing to redo or the undo stack is at capacity.
func (t *UndoTracker) Redo(g *grid.Grid) (PaintAction, bool) {
	if len(t.redo) == 0 || len(t.undo) >= TrackerCapacity {
		return nil, false
	}
	a := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	t.undo = append(t.undo, a)
	a.RedoApply(g)
	return a, true
}
