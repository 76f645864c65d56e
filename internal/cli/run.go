package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrih/glaze/internal/engine"
	"github.com/petrih/glaze/internal/harness"
	"github.com/petrih/glaze/internal/render"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	NoCanvas bool

	// Tokens overrides the action token generator (for testing). Defaults
	// to UUIDv7Generator.
	Tokens engine.TokenGenerator
}

// RunReport is the run command's JSON payload.
type RunReport struct {
	Scenario string   `json:"scenario"`
	Steps    int      `json:"steps"`
	Trace    []string `json:"trace"`
	Canvas   string   `json:"canvas"` // hex render, one row per line
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a paint scenario and show the resulting canvas",
		Long: `Execute a paint scenario against a fresh grid.

Each step is recorded into the undo and replay trackers exactly as an
interactive session would, then the final canvas and the action trace are
printed.

Examples:
  glaze run scenario.yaml
  glaze run scenario.yaml --format json
  glaze run scenario.yaml --no-canvas -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoCanvas, "no-canvas", false, "suppress the canvas, print only the trace")

	return cmd
}

func runScenario(opts *RunOptions, path string, cmd *cobra.Command) error {
	_, res, sc, err := executeScenario(opts.RootOptions, opts.Tokens, path)
	if err != nil {
		return err
	}

	if err := harness.CheckAssertions(sc, res); err != nil {
		out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		_ = out.Failure(err.Error())
		return WrapExitError(ExitFailure, "scenario assertions failed", err)
	}

	report := RunReport{
		Scenario: sc.Name,
		Steps:    len(res.Trace),
		Canvas:   res.HexRender(),
	}
	for _, e := range res.Trace {
		report.Trace = append(report.Trace, e.String())
	}

	if opts.Format == "json" {
		out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return out.Success(report)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "scenario %s: %d steps\n", report.Scenario, report.Steps)
	fmt.Fprintln(w, strings.TrimRight(strings.Join(report.Trace, "\n"), "\n"))
	if !opts.NoCanvas {
		fmt.Fprint(w, render.Text(res.Grid, render.DefaultBase, int(res.FinalTick)))
	}
	return nil
}

// executeScenario is the shared load-and-run path for run, replay, and
// render.
func executeScenario(rootOpts *RootOptions, tokens engine.TokenGenerator, path string) (*harness.Harness, *harness.Result, *harness.Scenario, error) {
	sc, err := harness.LoadScenario(path)
	if err != nil {
		return nil, nil, nil, WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	if tokens == nil {
		tokens = engine.UUIDv7Generator{}
	}
	h := harness.New(engine.NewClock(), tokens, newLogger(rootOpts))

	res, err := h.Run(sc)
	if err != nil {
		return nil, nil, nil, WrapExitError(ExitCommandError, "scenario execution failed", err)
	}
	return h, res, sc, nil
}
