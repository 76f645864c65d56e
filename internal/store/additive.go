package store

import "github.com/petrih/glaze/internal/layer"

// AdditiveCapacity is the hard bound on layers held by one additive store.
// Add refuses further layers once reached; there is no growth.
const AdditiveCapacity = 2000

// AdditiveStore holds an ordered sequence of layers, oldest-added first,
// backed by a fixed-capacity ring buffer. Duplicates are allowed: the same
// effect may be stacked any number of times and each occurrence applies.
//
// The backing array is allocated on first Add so that empty cells in a large
// grid stay cheap.
type AdditiveStore struct {
	buf  []layer.Layer // len AdditiveCapacity once allocated
	head int
	n    int
}

// NewAdditive creates an empty additive store.
func NewAdditive() *AdditiveStore {
	return &AdditiveStore{}
}

// Len returns the number of stored layers.
func (s *AdditiveStore) Len() int {
	return s.n
}

// Add appends l as the newest layer. Returns false when the store is full.
func (s *AdditiveStore) Add(l layer.Layer) bool {
	if s.n == AdditiveCapacity {
		return false
	}
	if s.buf == nil {
		s.buf = make([]layer.Layer, AdditiveCapacity)
	}
	s.buf[(s.head+s.n)%AdditiveCapacity] = l
	s.n++
	return true
}

// Erase removes the oldest-added layer. The argument is ignored: additive
// stores always drop from the front. Returns false when empty.
func (s *AdditiveStore) Erase(layer.Layer) bool {
	if s.n == 0 {
		return false
	}
	// Clear the slot so the buffer does not pin the layer's closure.
	s.buf[s.head] = layer.Layer{}
	s.head = (s.head + 1) % AdditiveCapacity
	s.n--
	return true
}

// GetColor folds every stored layer over base, oldest to newest. The stored
// order is unchanged afterwards.
func (s *AdditiveStore) GetColor(base layer.Color, t, x, y int) layer.Color {
	c := base
	for i := 0; i < s.n; i++ {
		c = s.buf[(s.head+i)%AdditiveCapacity].Apply(c, t, x, y)
	}
	return c
}

// Special reverses the stored order in place: the oldest layer becomes the
// newest and vice versa. Empty store is a no-op.
func (s *AdditiveStore) Special() {
	for i, j := 0, s.n-1; i < j; i, j = i+1, j-1 {
		a := (s.head + i) % AdditiveCapacity
		b := (s.head + j) % AdditiveCapacity
		s.buf[a], s.buf[b] = s.buf[b], s.buf[a]
	}
}
