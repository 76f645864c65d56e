package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrih/glaze/internal/engine"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions

	// Tokens overrides the action token generator (for testing).
	Tokens engine.TokenGenerator
}

// ReplayReport is the replay command's JSON payload.
type ReplayReport struct {
	Scenario      string `json:"scenario"`
	Actions       int    `json:"actions"`
	Deterministic bool   `json:"deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Run a scenario, replay the recording, and verify determinism",
		Long: `Run a paint scenario, then drain its recorded action queue onto a
fresh grid and compare the two canvases.

Exit codes:
  0 - replayed canvas is byte-identical to the live one
  1 - replay diverged
  2 - command error (scenario missing or invalid)

Examples:
  glaze replay scenario.yaml
  glaze replay scenario.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	return cmd
}

func runReplay(opts *ReplayOptions, path string, cmd *cobra.Command) error {
	h, res, sc, err := executeScenario(opts.RootOptions, opts.Tokens, path)
	if err != nil {
		return err
	}

	report := ReplayReport{Scenario: sc.Name, Actions: res.Replay.Pending()}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if err := h.VerifyReplay(sc, res); err != nil {
		_ = out.Failure(err.Error())
		return WrapExitError(ExitFailure, "replay diverged", err)
	}
	report.Deterministic = true

	if opts.Format == "json" {
		return out.Success(report)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "scenario %s: %d actions replayed deterministically\n",
		report.Scenario, report.Actions)
	return nil
}
