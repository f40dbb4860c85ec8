// Package scale runs spatial and temporal transforms over project files on
// disk. It owns the batch pipeline: read, transform, write, with bounded
// concurrency and per-file outcomes.
package scale

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/twardoch/tscprojpy/internal/paths"
	"github.com/twardoch/tscprojpy/pkg/tscproj"
)

// Mode selects which axis of the project a job scales.
type Mode int

const (
	// ModeSpatial multiplies pixel-space values (canvas, geometry).
	ModeSpatial Mode = iota
	// ModeTemporal multiplies timeline values, preserving audio duration.
	ModeTemporal
)

func (m Mode) String() string {
	switch m {
	case ModeSpatial:
		return "spatial"
	case ModeTemporal:
		return "temporal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Stage names reported while a job moves through the pipeline. They double
// as the statuses shown in progress output.
const (
	StageLoading = "loading"
	StageScaling = "scaling"
	StageSaving  = "saving"
)

// Job describes one file to transform. Index is the job's position in the
// batch and keys progress rows, so callers should keep it unique.
type Job struct {
	Index   int
	Input   string
	Output  string
	Mode    Mode
	Percent float64
}

// Factor converts the user-facing percentage into the multiplier applied to
// property values (150 becomes 1.5).
func (j Job) Factor() float64 {
	return j.Percent / 100.0
}

// Result captures the outcome of one job.
type Result struct {
	Job      Job
	Skipped  bool
	Reason   string
	Warnings []tscproj.Warning
	Elapsed  time.Duration
	Err      error
}

// Options controls batch execution behaviour.
type Options struct {
	Concurrency int
	Overwrite   bool
	Strict      bool
	Reporter    ProgressReporter
	Logger      *log.Logger
}

// ProgressReporter receives notifications as jobs move through the pipeline.
type ProgressReporter interface {
	Stage(job Job, stage string)
	Complete(result Result)
}

// Run executes all jobs with bounded concurrency. Jobs are independent: a
// failing file is reported in its Result and never aborts the rest of the
// batch. Results line up with the jobs slice.
func Run(ctx context.Context, jobs []Job, opts Options) []Result {
	if ctx == nil {
		ctx = context.Background()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = Result{Job: job, Err: ctx.Err()}
			default:
				results[i] = runOne(job, opts)
			}
			if opts.Reporter != nil {
				opts.Reporter.Complete(results[i])
			}
			return nil
		})
	}
	g.Wait()

	return results
}

func runOne(job Job, opts Options) (res Result) {
	res.Job = job
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	logf := func(format string, v ...any) {
		if opts.Logger != nil {
			opts.Logger.Printf(format, v...)
		}
	}
	report := func(stage string) {
		if opts.Reporter != nil {
			opts.Reporter.Stage(job, stage)
		}
	}

	if !opts.Overwrite {
		exists, err := paths.FileExists(job.Output)
		if err != nil {
			res.Err = fmt.Errorf("stat output: %w", err)
			return res
		}
		if exists {
			res.Skipped = true
			res.Reason = "output exists"
			logf("%s skipped: %s already exists", job.Input, job.Output)
			return res
		}
	}

	report(StageLoading)
	data, err := os.ReadFile(job.Input)
	if err != nil {
		res.Err = fmt.Errorf("read project: %w", err)
		return res
	}

	project, warnings, err := tscproj.Load(data)
	if err != nil {
		res.Err = err
		return res
	}
	res.Warnings = warnings
	for _, w := range warnings {
		logf("%s: %s", job.Input, w)
	}
	if opts.Strict && len(warnings) > 0 {
		res.Err = fmt.Errorf("refusing to scale with %d load warning(s) in strict mode", len(warnings))
		return res
	}

	report(StageScaling)
	var scaled *tscproj.Project
	switch job.Mode {
	case ModeTemporal:
		scaled, err = tscproj.ScaleTemporal(project, job.Factor())
	default:
		scaled, err = tscproj.ScaleSpatial(project, job.Factor())
	}
	if err != nil {
		res.Err = err
		return res
	}

	report(StageSaving)
	out, err := tscproj.Save(scaled)
	if err != nil {
		res.Err = err
		return res
	}
	if err := os.WriteFile(job.Output, out, 0o644); err != nil {
		res.Err = fmt.Errorf("write project: %w", err)
		return res
	}

	logf("%s -> %s (%s %g%%)", job.Input, job.Output, job.Mode, job.Percent)
	return res
}
