package store

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/petrih/glaze/internal/layer"
)

// SequenceStore tracks, per effect type in the catalogue, whether that type
// is currently applying. Composition ignores insertion order entirely:
// GetColor applies the applying types in ascending catalogue index.
//
// A type that has been erased stays tracked as "not applying" rather than
// being forgotten; re-adding it flips the flag back without consuming a new
// slot. Capacity equals the catalogue size, so with the built-in catalogue
// every type fits and Add can refuse only a wholly new type once full.
type SequenceStore struct {
	status map[int]bool // catalogue index -> applying
	cap    int
}

// NewSequence creates an empty sequence store sized to the effect catalogue.
func NewSequence() *SequenceStore {
	return &SequenceStore{
		status: make(map[int]bool),
		cap:    layer.Count(),
	}
}

// Add ensures l's type is applying. Returns false when the type is already
// applying, or when the store has no slot left for a wholly new type.
func (s *SequenceStore) Add(l layer.Layer) bool {
	applying, tracked := s.status[l.Index]
	if tracked && applying {
		return false
	}
	if !tracked && len(s.status) >= s.cap {
		return false
	}
	s.status[l.Index] = true
	return true
}

// Erase ensures l's type is not applying. Returns false when it was not
// applying to begin with.
func (s *SequenceStore) Erase(l layer.Layer) bool {
	if !s.status[l.Index] {
		return false
	}
	s.status[l.Index] = false
	return true
}

// GetColor applies every applying type to base in ascending catalogue index.
// The order layers were added in is irrelevant.
func (s *SequenceStore) GetColor(base layer.Color, t, x, y int) layer.Color {
	c := base
	for i := 0; i < layer.Count(); i++ {
		if !s.status[i] {
			continue
		}
		if l, ok := layer.Get(i); ok {
			c = l.Apply(c, t, x, y)
		}
	}
	return c
}

// Special erases the applying type whose name is the lexicographic median.
// With an even count the lower of the two middle names is chosen. A single
// applying type is its own median and gets erased; an empty store is a no-op.
//
// Names are NFC-normalized before comparison so composed and decomposed
// spellings of the same name order identically.
func (s *SequenceStore) Special() {
	applying := s.applyingLayers()
	if len(applying) == 0 {
		return
	}
	sort.Slice(applying, func(i, j int) bool {
		return norm.NFC.String(applying[i].Name) < norm.NFC.String(applying[j].Name)
	})
	// (n-1)/2 is the exact middle for odd n and the lower middle for even n.
	s.Erase(applying[(len(applying)-1)/2])
}

// applyingLayers collects the applying types in catalogue index order.
func (s *SequenceStore) applyingLayers() []layer.Layer {
	var out []layer.Layer
	for i := 0; i < layer.Count(); i++ {
		if !s.status[i] {
			continue
		}
		if l, ok := layer.Get(i); ok {
			out = append(out, l)
		}
	}
	return out
}
