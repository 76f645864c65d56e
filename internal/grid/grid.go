// Package grid owns the 2D canvas: a rectangle of compositing stores of one
// kind, plus the brush-size state used when painting.
package grid

import (
	"fmt"

	"github.com/petrih/glaze/internal/layer"
	"github.com/petrih/glaze/internal/store"
)

// Brush size bounds. The brush paints every cell within Manhattan distance
// of the target, so size 0 touches exactly one cell.
const (
	DefaultBrush = 2
	MaxBrush     = 5
	MinBrush     = 0
)

// Cell identifies one grid square.
type Cell struct {
	X, Y int
}

// Grid is a width×height canvas of stores. Cells are created once at
// construction and mutated in place for the grid's lifetime.
type Grid struct {
	kind   store.Kind
	width  int
	height int
	cells  [][]store.Store // indexed cells[x][y]
	brush  int
}

// New builds a grid of empty stores of the given kind.
func New(kind store.Kind, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	cells := make([][]store.Store, width)
	for x := range cells {
		cells[x] = make([]store.Store, height)
		for y := range cells[x] {
			s, err := store.New(kind)
			if err != nil {
				return nil, err
			}
			cells[x][y] = s
		}
	}
	return &Grid{
		kind:   kind,
		width:  width,
		height: height,
		cells:  cells,
		brush:  DefaultBrush,
	}, nil
}

// Kind returns the store kind shared by every cell.
func (g *Grid) Kind() store.Kind { return g.kind }

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the store at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) store.Store {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[x][y]
}

// Brush returns the current brush size.
func (g *Grid) Brush() int { return g.brush }

// IncreaseBrush grows the brush by one, capped at MaxBrush.
func (g *Grid) IncreaseBrush() {
	if g.brush < MaxBrush {
		g.brush++
	}
}

// DecreaseBrush shrinks the brush by one, capped at MinBrush.
func (g *Grid) DecreaseBrush() {
	if g.brush > MinBrush {
		g.brush--
	}
}

// Special triggers the special transform on every cell.
func (g *Grid) Special() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y].Special()
		}
	}
}

// Paint adds l to every in-bounds cell within Manhattan distance brush of
// (x, y) and returns the cells whose state actually changed, in a fixed
// column-then-row order. The returned cells are what an undoable draw
// action must erase.
func (g *Grid) Paint(l layer.Layer, x, y, brush int) []Cell {
	var changed []Cell
	for cx := x - brush; cx <= x+brush; cx++ {
		for cy := y - brush; cy <= y+brush; cy++ {
			if abs(cx-x)+abs(cy-y) > brush {
				continue
			}
			s := g.At(cx, cy)
			if s == nil {
				continue
			}
			if s.Add(l) {
				changed = append(changed, Cell{X: cx, Y: cy})
			}
		}
	}
	return changed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
