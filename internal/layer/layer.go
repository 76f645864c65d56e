// Package layer defines the color model and the fixed catalogue of paint
// effects available to the compositing stores.
//
// The catalogue is populated once at package init and is immutable for the
// process lifetime: stores query it, they never extend it. Every effect is a
// pure function of (color, timestamp, x, y), which is what makes session
// replay byte-stable.
package layer

// Color is an 8-bit RGB triple. Every effect maps Color to Color, so the
// type is closed under arbitrary compositing chains.
type Color struct {
	R, G, B uint8
}

// RGB is a convenience constructor for Color literals.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ApplyFunc transforms a color. The timestamp t is a logical tick (not wall
// time) and x, y are the cell coordinates, so animated effects like rainbow
// stay deterministic under replay.
type ApplyFunc func(c Color, t, x, y int) Color

// Layer is one named entry in the effect catalogue. Index is assigned at
// registration and unique per effect; two layers are the same effect exactly
// when their indices are equal.
type Layer struct {
	Index int
	Name  string
	Apply ApplyFunc
}

// catalogue holds every registered layer in index order.
// Writes happen only from register() during package init.
var catalogue []Layer

// register appends an effect to the catalogue and returns it with its
// assigned index. Only called from package-level var initialization.
func register(name string, fn ApplyFunc) Layer {
	l := Layer{Index: len(catalogue), Name: name, Apply: fn}
	catalogue = append(catalogue, l)
	return l
}

// Layers returns the full catalogue in ascending index order. The returned
// slice is a copy; callers may not mutate the catalogue through it.
func Layers() []Layer {
	out := make([]Layer, len(catalogue))
	copy(out, catalogue)
	return out
}

// Get returns the layer with the given index.
func Get(index int) (Layer, bool) {
	if index < 0 || index >= len(catalogue) {
		return Layer{}, false
	}
	return catalogue[index], true
}

// ByName returns the layer with the given name.
func ByName(name string) (Layer, bool) {
	for _, l := range catalogue {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Count returns the number of registered effects. It bounds the capacity of
// the sequence store, which tracks at most one status per effect type.
func Count() int {
	return len(catalogue)
}
