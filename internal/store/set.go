package store

import "github.com/petrih/glaze/internal/layer"

// SetStore holds at most one layer at a time plus an invert toggle.
//
// Adding replaces whatever is held; erasing clears whatever is held,
// regardless of the argument. Special toggles inversion of the output,
// applied after the held layer (or to the bare base when nothing is held).
type SetStore struct {
	held     layer.Layer
	hasLayer bool
	inverted bool
}

// NewSet creates an empty set store with inversion off.
func NewSet() *SetStore {
	return &SetStore{}
}

// Add replaces the held layer with l. Re-adding the layer already held is a
// no-op and returns false.
func (s *SetStore) Add(l layer.Layer) bool {
	if s.hasLayer && s.held.Index == l.Index {
		return false
	}
	s.held = l
	s.hasLayer = true
	return true
}

// Erase clears the held layer if any. The argument is ignored: a set store
// erases whatever it holds.
func (s *SetStore) Erase(layer.Layer) bool {
	if !s.hasLayer {
		return false
	}
	s.held = layer.Layer{}
	s.hasLayer = false
	return true
}

// GetColor applies the held layer to base, then the invert transform when
// the special toggle is on.
func (s *SetStore) GetColor(base layer.Color, t, x, y int) layer.Color {
	c := base
	if s.hasLayer {
		c = s.held.Apply(base, t, x, y)
	}
	if s.inverted {
		c = layer.Invert.Apply(c, t, x, y)
	}
	return c
}

// Special toggles output inversion.
func (s *SetStore) Special() {
	s.inverted = !s.inverted
}
