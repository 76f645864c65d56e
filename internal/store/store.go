// Package store implements the per-cell compositing stores.
//
// A Store owns the layers applied to a single grid cell and computes the
// cell's displayed color from a base color. Three fixed strategies exist,
// selected per grid at construction time:
//
//   - set: at most one layer, with an invert toggle
//   - additive: bounded FIFO of layers, duplicates allowed
//   - sequence: per-effect applying flag, composed in catalogue index order
//
// All stores share one invariant: visible state is fully determined by the
// sequence of Add/Erase/Special calls applied to the store. GetColor never
// mutates, so rendering a grid twice yields identical output.
package store

import (
	"fmt"

	"github.com/petrih/glaze/internal/layer"
)

// Store is the compositing contract every cell implements.
//
// Add and Erase report whether the store's visible state actually changed;
// a refused or redundant call returns false and leaves the store untouched.
// Capacity overflow is never fatal, it is absorbed as a false return.
type Store interface {
	// Add makes the layer part of what this cell applies.
	Add(l layer.Layer) bool

	// Erase removes a layer's effect. Which layer goes is strategy-specific:
	// set and additive ignore the argument, sequence erases by type.
	Erase(l layer.Layer) bool

	// GetColor computes the displayed color for this cell. Pure: the stored
	// layers are unchanged afterwards.
	GetColor(base layer.Color, t, x, y int) layer.Color

	// Special applies the strategy's one-shot structural transform:
	// invert toggle (set), in-place reversal (additive), or median-name
	// erasure (sequence).
	Special()
}

// Kind selects one of the three store strategies.
type Kind string

const (
	KindSet      Kind = "set"
	KindAdditive Kind = "additive"
	KindSequence Kind = "sequence"
)

// Kinds lists every valid Kind, in declaration order.
var Kinds = []Kind{KindSet, KindAdditive, KindSequence}

// ParseKind converts a script string into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown store kind %q: must be one of %v", s, Kinds)
}

// New constructs an empty store of the given kind.
func New(k Kind) (Store, error) {
	switch k {
	case KindSet:
		return NewSet(), nil
	case KindAdditive:
		return NewAdditive(), nil
	case KindSequence:
		return NewSequence(), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", k)
	}
}
