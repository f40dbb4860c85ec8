package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twardoch/tscprojpy/internal/logx"
	"github.com/twardoch/tscprojpy/internal/paths"
	"github.com/twardoch/tscprojpy/internal/scale"
	"github.com/twardoch/tscprojpy/internal/tui"
	"github.com/twardoch/tscprojpy/pkg/tscproj"
)

// scaleInvocation carries the per-command flag values into the shared
// pipeline shared by xyscale and timescale.
type scaleInvocation struct {
	name       string
	mode       scale.Mode
	percent    float64
	output     string
	overwrite  bool
	strict     bool
	noProgress bool
}

func runScale(cmd *cobra.Command, args []string, inv scaleInvocation) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if inv.percent <= 0 {
		return fmt.Errorf("scale percentage must be positive, got %g", inv.percent)
	}
	if inv.output != "" && len(args) > 1 {
		return fmt.Errorf("--output only applies to a single input, got %d inputs", len(args))
	}

	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	var glog *log.Logger
	if cfg.Logging.EnabledValue() {
		logger, closer, err := logx.NewGlobal(inv.name)
		if err == nil {
			glog = logger
			defer closer.Close()
		}
	}
	glogf := func(format string, v ...any) {
		if glog != nil {
			glog.Printf(format, v...)
		}
	}
	glogf("%s started: scale=%g%% inputs=%d config=%s", inv.name, inv.percent, len(args), cfgPath)

	jobs, err := buildScaleJobs(cmd.ErrOrStderr(), args, inv)
	if err != nil {
		return err
	}

	outWriter := cmd.OutOrStdout()
	mode := tui.DetectMode(outWriter, inv.noProgress, outputJSON)

	opts := scale.Options{
		Concurrency: cfg.Scale.Jobs,
		Overwrite:   inv.overwrite || cfg.Scale.OverwriteValue(),
		Strict:      inv.strict || cfg.Scale.StrictValue(),
		Logger:      glog,
	}

	var results []scale.Result
	work := func(send func(tea.Msg)) {
		runOpts := opts
		if send != nil {
			runOpts.Reporter = tui.NewScaleReporter(send, scaleJobKey, scaleStageFields, scaleCompleteFields)
		}
		results = scale.Run(ctx, jobs, runOpts)
	}

	if mode == tui.ModeTUI {
		glogf("starting TUI (mode=tui)")
		fmt.Fprintf(outWriter, "Scale: %g%% (%s)\n", inv.percent, inv.mode)
		model := buildScaleProgressModel(jobs)
		if err := tui.RunWithWork(outWriter, model, work); err != nil {
			return err
		}
		glogf("TUI finished")
	} else {
		work(nil)
	}

	rows, counts := collectScaleRows(results)
	for _, res := range results {
		if res.Err != nil {
			glogf("%s failed: %v", res.Job.Input, res.Err)
		}
	}

	switch mode {
	case tui.ModeJSON:
		if err := writeScaleJSON(cmd, inv, rows, counts); err != nil {
			return err
		}
	case tui.ModeTUI:
		printScaleSummary(outWriter, counts)
	default:
		writeScaleTable(cmd, inv, rows, counts)
	}

	if counts.Failed > 0 {
		return fmt.Errorf("scaling failed for %d file(s)", counts.Failed)
	}
	return nil
}

func buildScaleJobs(errWriter io.Writer, inputs []string, inv scaleInvocation) ([]scale.Job, error) {
	jobs := make([]scale.Job, 0, len(inputs))
	for i, input := range inputs {
		exists, err := paths.FileExists(input)
		if err != nil {
			return nil, fmt.Errorf("stat input %s: %w", input, err)
		}
		if !exists {
			return nil, fmt.Errorf("input file does not exist: %s", input)
		}
		if !strings.EqualFold(filepath.Ext(input), ".tscproj") {
			fmt.Fprintf(errWriter, "warning: %s does not have a .tscproj extension\n", input)
		}

		output := inv.output
		if output == "" {
			if inv.mode == scale.ModeTemporal {
				output = paths.TimescaleOutputPath(input, inv.percent)
			} else {
				output = paths.ScaledOutputPath(input, inv.percent)
			}
		}
		jobs = append(jobs, scale.Job{
			Index:   i,
			Input:   input,
			Output:  output,
			Mode:    inv.mode,
			Percent: inv.percent,
		})
	}
	return jobs, nil
}

var scaleColumns = []tui.Column{
	{Header: "FILE", Width: 24},
	{Header: "STATUS", Width: 8},
	{Header: "OUTPUT", Width: 28},
}

func buildScaleProgressModel(jobs []scale.Job) tui.ProgressModel {
	model := tui.NewProgressModel("Scaling", scaleColumns)
	for _, job := range jobs {
		model.AddRow(scaleJobKey(job), []string{
			filepath.Base(job.Input),
			"pending",
			"-",
		})
	}
	return model
}

func scaleJobKey(job scale.Job) string {
	return fmt.Sprintf("%03d", job.Index)
}

func scaleStageFields(_ scale.Job, stage string) map[string]string {
	return map[string]string{"STATUS": stage}
}

func scaleCompleteFields(res scale.Result) map[string]string {
	fields := map[string]string{"STATUS": scaleStatus(res)}
	if res.Err == nil && !res.Skipped {
		fields["OUTPUT"] = filepath.Base(res.Job.Output)
	}
	return fields
}

func scaleStatus(res scale.Result) string {
	switch {
	case res.Err != nil:
		return "error"
	case res.Skipped:
		return "skipped"
	case len(res.Warnings) > 0:
		return "warned"
	default:
		return "scaled"
	}
}

type scaleRowResult struct {
	Input     string            `json:"input"`
	Output    string            `json:"output"`
	Status    string            `json:"status"`
	Reason    string            `json:"reason,omitempty"`
	Warnings  []tscproj.Warning `json:"warnings,omitempty"`
	Error     string            `json:"error,omitempty"`
	ElapsedMS int64             `json:"elapsed_ms"`
}

type scaleCounts struct {
	Scaled   int `json:"scaled"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
}

func collectScaleRows(results []scale.Result) ([]scaleRowResult, scaleCounts) {
	rows := make([]scaleRowResult, 0, len(results))
	counts := scaleCounts{}

	for _, res := range results {
		row := scaleRowResult{
			Input:     res.Job.Input,
			Output:    res.Job.Output,
			Status:    scaleStatus(res),
			Reason:    res.Reason,
			Warnings:  res.Warnings,
			ElapsedMS: res.Elapsed.Milliseconds(),
		}
		counts.Warnings += len(res.Warnings)
		switch {
		case res.Err != nil:
			row.Error = res.Err.Error()
			counts.Failed++
		case res.Skipped:
			counts.Skipped++
		default:
			counts.Scaled++
		}
		rows = append(rows, row)
	}
	return rows, counts
}

func writeScaleJSON(cmd *cobra.Command, inv scaleInvocation, rows []scaleRowResult, counts scaleCounts) error {
	payload := struct {
		Mode    string           `json:"mode"`
		Percent float64          `json:"percent"`
		Results []scaleRowResult `json:"results"`
		Summary scaleCounts      `json:"summary"`
	}{
		Mode:    inv.mode.String(),
		Percent: inv.percent,
		Results: rows,
		Summary: counts,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scale json: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeScaleTable(cmd *cobra.Command, inv scaleInvocation, rows []scaleRowResult, counts scaleCounts) {
	fmt.Fprintf(cmd.OutOrStdout(), "Scale: %g%% (%s)\n", inv.percent, inv.mode)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSTATUS\tOUTPUT\tWARNINGS\tERROR")
	for _, row := range rows {
		note := row.Error
		if note == "" {
			note = row.Reason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			row.Input,
			row.Status,
			row.Output,
			len(row.Warnings),
			note,
		)
	}
	w.Flush()

	printScaleSummary(cmd.OutOrStdout(), counts)
}

func printScaleSummary(w io.Writer, counts scaleCounts) {
	fmt.Fprintf(w, "Scaled: %d, Skipped: %d, Failed: %d, Warnings: %d\n",
		counts.Scaled, counts.Skipped, counts.Failed, counts.Warnings,
	)
}
