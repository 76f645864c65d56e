package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrih/glaze/internal/engine"
	"github.com/petrih/glaze/internal/render"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output   string
	CellSize int
	Labels   bool

	// Tokens overrides the action token generator (for testing).
	Tokens engine.TokenGenerator
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Run a scenario and export the canvas as PNG",
		Long: `Run a paint scenario and rasterize the final canvas to a PNG file,
one filled square per cell.

Examples:
  glaze render scenario.yaml -o canvas.png
  glaze render scenario.yaml -o canvas.png --cell 32 --labels`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output PNG path (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().IntVar(&opts.CellSize, "cell", 16, "cell edge length in pixels")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw cell coordinates")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	_, res, sc, err := executeScenario(opts.RootOptions, opts.Tokens, path)
	if err != nil {
		return err
	}

	pngOpts := render.PNGOptions{CellSize: opts.CellSize, Labels: opts.Labels}
	if err := render.SavePNG(opts.Output, res.Grid, render.DefaultBase, int(res.FinalTick), pngOpts); err != nil {
		return WrapExitError(ExitCommandError, "failed to render canvas", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "scenario %s: wrote %s (%dx%d cells at %dpx)\n",
		sc.Name, opts.Output, res.Grid.Width(), res.Grid.Height(), opts.CellSize)
	return nil
}
