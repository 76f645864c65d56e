package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/petrih/glaze/internal/testutil"
)

// Snapshot renders a finished run for golden comparison: the full trace,
// a separator, then the canonical hex render of the final canvas.
func Snapshot(res *Result) []byte {
	return []byte(res.TraceText() + "---\n" + res.HexRender())
}

// RunGolden loads a scenario file, executes it with deterministic clock and
// tokens, enforces its assertions and the replay-determinism property, and
// compares the snapshot against testdata/{scenario name}.golden.
//
// Regenerate golden files with:
//
//	go test ./internal/harness -update
func RunGolden(t *testing.T, scenarioPath string) {
	t.Helper()

	sc, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("failed to load scenario: %v", err)
	}

	h := New(testutil.NewDeterministicClock(), testutil.NewFixedGenerator(), nil)
	res, err := h.Run(sc)
	if err != nil {
		t.Fatalf("scenario run failed: %v", err)
	}

	if err := CheckAssertions(sc, res); err != nil {
		t.Errorf("assertion failure: %v", err)
	}

	// Snapshot before VerifyReplay: verification drains the replay queue.
	snap := Snapshot(res)

	if err := h.VerifyReplay(sc, res); err != nil {
		t.Errorf("replay verification failed: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, sc.Name, snap)
}
