package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeFixture drops a scenario file into a temp dir and returns its path.
func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validScenario = `
name: cli-fixture
grid:
  style: set
  width: 2
  height: 2
steps:
  - op: draw
    layer: black
    x: 0
    y: 0
    brush: 0
  - op: special
  - op: undo
assertions:
  - x: 0
    y: 0
    color: "#000000"
`

const failingScenario = `
name: cli-failing
grid:
  style: set
  width: 2
  height: 2
steps:
  - op: draw
    layer: black
    x: 0
    y: 0
    brush: 0
assertions:
  - x: 1
    y: 1
    color: "#000000"
`

const invalidScenario = `
name: cli-invalid
grid:
  style: set
  width: 2
  height: 2
steps:
  - op: draw
    layer: no-such-layer
    x: 0
    y: 0
`
