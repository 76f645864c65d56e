package cli

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_WritesPNG(t *testing.T) {
	scenario := writeFixture(t, validScenario)
	out := filepath.Join(t.TempDir(), "canvas.png")

	stdout, err := executeCommand(t, "render", scenario, "-o", out, "--cell", "8")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx(), "2 cells at 8px")
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestRender_RequiresOutputFlag(t *testing.T) {
	scenario := writeFixture(t, validScenario)
	_, err := executeCommand(t, "render", scenario)
	assert.Error(t, err)
}

func TestRender_BadCellSizeExitsTwo(t *testing.T) {
	scenario := writeFixture(t, validScenario)
	out := filepath.Join(t.TempDir(), "canvas.png")

	_, err := executeCommand(t, "render", scenario, "-o", out, "--cell", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
