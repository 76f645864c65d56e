package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrih/glaze/internal/layer"
	"github.com/petrih/glaze/internal/store"
)

func TestNew_BuildsIndependentCells(t *testing.T) {
	g, err := New(store.KindSet, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, DefaultBrush, g.Brush())

	// Mutating one cell must not leak into its neighbours.
	require.True(t, g.At(0, 0).Add(layer.Black))
	base := layer.RGB(200, 200, 200)
	assert.Equal(t, layer.RGB(0, 0, 0), g.At(0, 0).GetColor(base, 0, 0, 0))
	assert.Equal(t, base, g.At(1, 0).GetColor(base, 0, 1, 0))
}

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := New(store.KindSet, 0, 5)
	assert.Error(t, err)

	_, err = New(store.KindSet, 5, -1)
	assert.Error(t, err)

	_, err = New(store.Kind("bogus"), 2, 2)
	assert.Error(t, err)
}

func TestAt_OutOfBounds(t *testing.T) {
	g, err := New(store.KindAdditive, 2, 2)
	require.NoError(t, err)

	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, 2))
	assert.NotNil(t, g.At(1, 1))
}

func TestBrush_Clamped(t *testing.T) {
	g, err := New(store.KindSet, 1, 1)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		g.IncreaseBrush()
	}
	assert.Equal(t, MaxBrush, g.Brush())

	for i := 0; i < 10; i++ {
		g.DecreaseBrush()
	}
	assert.Equal(t, MinBrush, g.Brush())
}

func TestSpecial_ReachesEveryCell(t *testing.T) {
	g, err := New(store.KindSet, 2, 2)
	require.NoError(t, err)

	g.Special()

	base := layer.RGB(100, 100, 100)
	want := layer.RGB(155, 155, 155)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, want, g.At(x, y).GetColor(base, 0, x, y))
		}
	}
}

func TestPaint_ManhattanBrush(t *testing.T) {
	g, err := New(store.KindAdditive, 5, 5)
	require.NoError(t, err)

	changed := g.Paint(layer.Black, 2, 2, 1)

	// Brush 1 around the center is a plus-shape of five cells.
	assert.ElementsMatch(t, []Cell{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 2},
	}, changed)
}

func TestPaint_ClipsAtEdges(t *testing.T) {
	g, err := New(store.KindAdditive, 3, 3)
	require.NoError(t, err)

	changed := g.Paint(layer.Black, 0, 0, 1)
	assert.ElementsMatch(t, []Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0},
	}, changed)
}

func TestPaint_ReportsOnlyEffectiveCells(t *testing.T) {
	g, err := New(store.KindSequence, 3, 3)
	require.NoError(t, err)

	first := g.Paint(layer.Black, 1, 1, 0)
	require.Len(t, first, 1)

	// Sequence stores refuse re-adding an applying type, so painting the
	// same cell again changes nothing.
	second := g.Paint(layer.Black, 1, 1, 0)
	assert.Empty(t, second)
}
