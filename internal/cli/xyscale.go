package cli

import (
	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/internal/scale"
)

var (
	xyscalePercent    float64
	xyscaleOutput     string
	xyscaleOverwrite  bool
	xyscaleStrict     bool
	xyscaleNoProgress bool
)

func newXYScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xyscale <project.tscproj> [more.tscproj...]",
		Short: "Scale spatial properties of project files by a percentage",
		Long: `Scale canvas dimensions, positions, sizes and other pixel-space values
of one or more Camtasia project files. Timing is left untouched.

The scale is a percentage: 150 produces a project 1.5 times larger.
Unrecognized properties pass through byte for byte.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runXYScale,
	}

	cmd.Flags().Float64Var(&xyscalePercent, "scale", 0, "Scale percentage, e.g. 150 for 150% (required)")
	_ = cmd.MarkFlagRequired("scale")
	cmd.Flags().StringVarP(&xyscaleOutput, "output", "o", "", "Output path (single input only; default: <input>_<scale>pct.tscproj)")
	cmd.Flags().BoolVar(&xyscaleOverwrite, "overwrite", false, "Overwrite existing output files")
	cmd.Flags().BoolVar(&xyscaleStrict, "strict", false, "Treat load warnings as errors")
	cmd.Flags().BoolVar(&xyscaleNoProgress, "no-progress", false, "Disable interactive progress output")

	return cmd
}

func runXYScale(cmd *cobra.Command, args []string) error {
	return runScale(cmd, args, scaleInvocation{
		name:       "xyscale",
		mode:       scale.ModeSpatial,
		percent:    xyscalePercent,
		output:     xyscaleOutput,
		overwrite:  xyscaleOverwrite,
		strict:     xyscaleStrict,
		noProgress: xyscaleNoProgress,
	})
}
