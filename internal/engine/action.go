package engine

import (
	"github.com/petrih/glaze/internal/grid"
	"github.com/petrih/glaze/internal/layer"
)

// PaintAction is an opaque reversible operation on a grid.
//
// Trackers depend only on this capability. They never construct actions and
// never look inside one; they decide which side to invoke and in what order.
type PaintAction interface {
	// RedoApply performs the action's forward effect.
	RedoApply(g *grid.Grid)

	// UndoApply performs the action's inverse effect.
	UndoApply(g *grid.Grid)
}

// PaintStep records one cell touched by a draw, together with the layer
// that was added there.
type PaintStep struct {
	X, Y  int
	Layer layer.Layer
}

// DrawAction is a brush stroke: the ordered set of cells a single paint
// gesture changed, all with the same layer.
//
// ID is a UUIDv7 token for trace correlation; Seq is the logical tick the
// action was recorded at. Neither influences how the action applies.
type DrawAction struct {
	ID    string
	Seq   int64
	Steps []PaintStep
}

// NewDrawAction builds a DrawAction from the cells a grid.Paint call
// reported as changed.
func NewDrawAction(id string, seq int64, l layer.Layer, cells []grid.Cell) *DrawAction {
	steps := make([]PaintStep, len(cells))
	for i, c := range cells {
		steps[i] = PaintStep{X: c.X, Y: c.Y, Layer: l}
	}
	return &DrawAction{ID: id, Seq: seq, Steps: steps}
}

// RedoApply re-adds the layer to every recorded cell in original order.
func (a *DrawAction) RedoApply(g *grid.Grid) {
	for _, s := range a.Steps {
		if cell := g.At(s.X, s.Y); cell != nil {
			cell.Add(s.Layer)
		}
	}
}

// UndoApply erases the layer from every recorded cell, in reverse order so
// order-sensitive stores unwind exactly what redo built up.
func (a *DrawAction) UndoApply(g *grid.Grid) {
	for i := len(a.Steps) - 1; i >= 0; i-- {
		s := a.Steps[i]
		if cell := g.At(s.X, s.Y); cell != nil {
			cell.Erase(s.Layer)
		}
	}
}

// SpecialAction triggers the special transform on every cell. Undo invokes
// the transform again: for set stores (toggle) and additive stores
// (reversal) that is an exact inverse, and for sequence stores it mirrors
// the recorded session's behavior.
type SpecialAction struct {
	ID  string
	Seq int64
}

// RedoApply triggers the grid-wide special transform.
func (a *SpecialAction) RedoApply(g *grid.Grid) {
	g.Special()
}

// UndoApply triggers the grid-wide special transform again.
func (a *SpecialAction) UndoApply(g *grid.Grid) {
	g.Special()
}
