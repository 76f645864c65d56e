// Package engine coordinates reversible paint actions over a grid.
//
// The engine never inspects what an action paints. It sees only the
// PaintAction capability (a forward and an inverse effect) and sequences
// calls to it: the UndoTracker moves actions between two bounded stacks,
// the ReplayTracker drains a recorded session in original order with each
// step's original polarity.
//
// Everything here is single-threaded. One session owns one
// UndoTracker and one ReplayTracker, and all mutation happens through
// serialized method calls; there are no locks because there is no sharing.
// Determinism follows: the same recorded sequence applied to an equal
// starting grid always produces the same grid.
package engine
