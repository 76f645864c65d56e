// Package render turns a grid into human-visible output.
//
// All renderers take the logical timestamp explicitly and call GetColor
// only, so rendering never mutates a store and the same (grid, tick) pair
// always produces identical bytes. The hex form is what golden files and
// the replay-determinism check compare.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petrih/glaze/internal/grid"
	"github.com/petrih/glaze/internal/layer"
)

// DefaultBase is the canvas background color composited under every cell.
var DefaultBase = layer.RGB(255, 255, 255)

// hexDigits avoids fmt in the per-cell loop.
const hexDigits = "0123456789abcdef"

func appendHexByte(b *strings.Builder, v uint8) {
	b.WriteByte(hexDigits[v>>4])
	b.WriteByte(hexDigits[v&0xf])
}

// CellHex returns the displayed color of one cell as "#rrggbb".
func CellHex(g *grid.Grid, base layer.Color, t, x, y int) string {
	c := g.At(x, y).GetColor(base, t, x, y)
	var b strings.Builder
	b.WriteByte('#')
	appendHexByte(&b, c.R)
	appendHexByte(&b, c.G)
	appendHexByte(&b, c.B)
	return b.String()
}

// Hex renders the grid as one line per row of space-separated #rrggbb
// values. This is the canonical comparison form: byte-equal hex renders
// mean visually identical grids.
func Hex(g *grid.Grid, base layer.Color, t int) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(CellHex(g, base, t, x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Text renders the grid for a terminal: a two-space block per cell with the
// cell's color as background. Color fidelity follows the terminal's
// detected profile, so this form is for eyes, not for comparison.
func Text(g *grid.Grid, base layer.Color, t int) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			style := lipgloss.NewStyle().Background(lipgloss.Color(CellHex(g, base, t, x, y)))
			b.WriteString(style.Render("  "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
