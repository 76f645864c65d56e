package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrih/glaze/internal/layer"
	"github.com/petrih/glaze/internal/store"
)

func TestUndoTracker_UndoEmpty(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	tr := NewUndoTracker()

	a, ok := tr.Undo(g)
	assert.False(t, ok, "nothing to undo")
	assert.Nil(t, a)

	base := layer.RGB(50, 50, 50)
	assert.Equal(t, base, g.At(0, 0).GetColor(base, 0, 0, 0), "grid untouched")
}

func TestUndoTracker_RedoEmpty(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	tr := NewUndoTracker()

	a, ok := tr.Redo(g)
	assert.False(t, ok)
	assert.Nil(t, a)
}

func TestUndoTracker_UndoThenRedoRestoresState(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	base := layer.RGB(100, 100, 100)
	tr := NewUndoTracker()

	cells := g.Paint(layer.Black, 1, 1, 0)
	draw := NewDrawAction("tok-1", 1, layer.Black, cells)
	tr.AddAction(draw)

	painted := g.At(1, 1).GetColor(base, 0, 1, 1)
	require.Equal(t, layer.RGB(0, 0, 0), painted)

	undone, ok := tr.Undo(g)
	require.True(t, ok)
	assert.Same(t, PaintAction(draw), undone, "the popped action is returned")
	assert.Equal(t, base, g.At(1, 1).GetColor(base, 0, 1, 1))

	redone, ok := tr.Redo(g)
	require.True(t, ok)
	assert.Same(t, PaintAction(draw), redone)
	assert.Equal(t, painted, g.At(1, 1).GetColor(base, 0, 1, 1),
		"redo restores the pre-undo visual state exactly")
}

func TestUndoTracker_LIFOOrder(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	tr := NewUndoTracker()

	var log []string
	tr.AddAction(&fakeAction{name: "a", log: &log})
	tr.AddAction(&fakeAction{name: "b", log: &log})
	tr.AddAction(&fakeAction{name: "c", log: &log})

	tr.Undo(g)
	tr.Undo(g)
	tr.Redo(g)

	assert.Equal(t, []string{"c:undo", "b:undo", "b:redo"}, log)
	assert.Equal(t, 2, tr.UndoDepth())
	assert.Equal(t, 1, tr.RedoDepth())
}

func TestUndoTracker_AddDoesNotClearRedo(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	tr := NewUndoTracker()

	var log []string
	tr.AddAction(&fakeAction{name: "old", log: &log})
	tr.Undo(g)
	require.Equal(t, 1, tr.RedoDepth())

	// Recording a fresh action leaves the redo history in place.
	tr.AddAction(&fakeAction{name: "new", log: &log})
	assert.Equal(t, 1, tr.RedoDepth())

	_, ok := tr.Redo(g)
	assert.True(t, ok)
	assert.Equal(t, []string{"old:undo", "old:redo"}, log)
}

func TestUndoTracker_FullStackDropsSilently(t *testing.T) {
	tr := NewUndoTracker()
	var log []string
	for i := 0; i < TrackerCapacity; i++ {
		tr.AddAction(&fakeAction{name: fmt.Sprintf("a%d", i), log: &log})
	}
	require.Equal(t, TrackerCapacity, tr.UndoDepth())

	tr.AddAction(&fakeAction{name: "overflow", log: &log})
	assert.Equal(t, TrackerCapacity, tr.UndoDepth(), "overflow is absorbed, not stored")
}

func TestUndoTracker_UndoRefusedWhenRedoFull(t *testing.T) {
	g := newTestGrid(t, store.KindSet)
	tr := NewUndoTracker()
	var log []string

	// Fill the redo stack by undoing a full undo stack, then record more.
	for i := 0; i < TrackerCapacity; i++ {
		tr.AddAction(&fakeAction{name: "x", log: &log})
	}
	for i := 0; i < TrackerCapacity; i++ {
		_, ok := tr.Undo(g)
		require.True(t, ok)
	}
	require.Equal(t, TrackerCapacity, tr.RedoDepth())

	tr.AddAction(&fakeAction{name: "y", log: &log})
	before := len(log)

	a, ok := tr.Undo(g)
	assert.False(t, ok, "hard cap on the redo side refuses the move")
	assert.Nil(t, a)
	assert.Equal(t, 1, tr.UndoDepth(), "refused undo does not pop")
	assert.Equal(t, before, len(log), "refused undo does not touch the grid")
}
