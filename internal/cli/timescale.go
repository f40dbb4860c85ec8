package cli

import (
	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/internal/scale"
)

var (
	timescalePercent    float64
	timescaleOutput     string
	timescaleOverwrite  bool
	timescaleStrict     bool
	timescaleNoProgress bool
)

func newTimescaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timescale <project.tscproj> [more.tscproj...]",
		Short: "Stretch or compress the timeline of project files by a percentage",
		Long: `Scale start times, durations and keyframe times of one or more Camtasia
project files. Audio clips keep their duration and are repositioned, so
200 doubles the timeline length without slowing audio down.

Spatial values are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTimescale,
	}

	cmd.Flags().Float64Var(&timescalePercent, "scale", 0, "Scale percentage, e.g. 150 for 150% (required)")
	_ = cmd.MarkFlagRequired("scale")
	cmd.Flags().StringVarP(&timescaleOutput, "output", "o", "", "Output path (single input only; default: <input>_time<scale>pct.tscproj)")
	cmd.Flags().BoolVar(&timescaleOverwrite, "overwrite", false, "Overwrite existing output files")
	cmd.Flags().BoolVar(&timescaleStrict, "strict", false, "Treat load warnings as errors")
	cmd.Flags().BoolVar(&timescaleNoProgress, "no-progress", false, "Disable interactive progress output")

	return cmd
}

func runTimescale(cmd *cobra.Command, args []string) error {
	return runScale(cmd, args, scaleInvocation{
		name:       "timescale",
		mode:       scale.ModeTemporal,
		percent:    timescalePercent,
		output:     timescaleOutput,
		overwrite:  timescaleOverwrite,
		strict:     timescaleStrict,
		noProgress: timescaleNoProgress,
	})
}
