package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrih/glaze/internal/harness"
)

// ValidateReport is the validate command's JSON payload.
type ValidateReport struct {
	Scenario string `json:"scenario"`
	Steps    int    `json:"steps"`
	Valid    bool   `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Check a scenario file without running it",
		Long: `Parse a scenario file and run its semantic checks: known store style,
known layer names, in-bounds coordinates, brush sizes, well-formed
assertions.

Exit codes:
  0 - scenario is valid
  1 - scenario is invalid
  2 - file could not be read

Example:
  glaze validate scenario.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if _, err := os.Stat(path); err != nil {
		return WrapExitError(ExitCommandError, "cannot read scenario file", err)
	}

	sc, err := harness.LoadScenario(path)
	if err != nil {
		_ = out.Failure(err.Error())
		return WrapExitError(ExitFailure, "invalid scenario", err)
	}

	report := ValidateReport{Scenario: sc.Name, Steps: len(sc.Steps), Valid: true}
	if opts.Format == "json" {
		return out.Success(report)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "scenario %s: valid (%d steps)\n", report.Scenario, report.Steps)
	return nil
}
