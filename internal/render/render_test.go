package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrih/glaze/internal/grid"
	"github.com/petrih/glaze/internal/layer"
	"github.com/petrih/glaze/internal/store"
)

func paintedGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(store.KindSet, 2, 2)
	require.NoError(t, err)
	g.Paint(layer.Black, 0, 0, 0)
	return g
}

func TestHex_Layout(t *testing.T) {
	g := paintedGrid(t)

	out := Hex(g, DefaultBase, 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2, "one line per row")

	assert.Equal(t, "#000000 #ffffff", lines[0])
	assert.Equal(t, "#ffffff #ffffff", lines[1])
}

func TestHex_PureAndStable(t *testing.T) {
	g := paintedGrid(t)

	first := Hex(g, DefaultBase, 7)
	second := Hex(g, DefaultBase, 7)
	assert.Equal(t, first, second, "rendering must not mutate the grid")
}

func TestCellHex(t *testing.T) {
	g := paintedGrid(t)
	assert.Equal(t, "#000000", CellHex(g, DefaultBase, 0, 0, 0))
	assert.Equal(t, "#ffffff", CellHex(g, DefaultBase, 0, 1, 1))
}

func TestText_OneBlockPerCell(t *testing.T) {
	g := paintedGrid(t)

	out := Text(g, DefaultBase, 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	// Styling may or may not add escape codes depending on the detected
	// terminal; the printable content is always two spaces per cell.
	for _, line := range lines {
		assert.Equal(t, 4, strings.Count(line, " "), "two cells of two spaces")
	}
}

func TestPNG_DimensionsAndPixels(t *testing.T) {
	g := paintedGrid(t)

	img, err := PNG(g, DefaultBase, 0, PNGOptions{CellSize: 4})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 8, bounds.Dx())
	assert.Equal(t, 8, bounds.Dy())

	// Center of the painted cell is black, center of an empty cell white.
	r, g0, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, color.RGBA{A: 255}, color.RGBA{R: uint8(r >> 8), G: uint8(g0 >> 8), B: uint8(b >> 8), A: 255})

	r, g0, b, _ = img.At(6, 6).RGBA()
	assert.Equal(t, uint8(255), uint8(r>>8))
	assert.Equal(t, uint8(255), uint8(g0>>8))
	assert.Equal(t, uint8(255), uint8(b>>8))
}

func TestPNG_RejectsBadCellSize(t *testing.T) {
	g := paintedGrid(t)
	_, err := PNG(g, DefaultBase, 0, PNGOptions{CellSize: 0})
	assert.Error(t, err)
}

func TestPNG_WithLabels(t *testing.T) {
	g := paintedGrid(t)
	img, err := PNG(g, DefaultBase, 0, PNGOptions{CellSize: 32, Labels: true})
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
