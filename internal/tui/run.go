package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// OutputMode selects how a command reports batch progress.
type OutputMode int

const (
	// ModeTUI renders a live bubbletea table while jobs run.
	ModeTUI OutputMode = iota
	// ModePlain prints one static table after all jobs finish.
	ModePlain
	// ModeJSON emits a machine-readable report instead of tables.
	ModeJSON
)

// RowUpdateMsg sets row fields by column name, keyed by job.
type RowUpdateMsg struct {
	Key    string
	Fields map[string]string
}

// WorkDoneMsg tells the model the batch finished.
type WorkDoneMsg struct{}

// ErrorMsg aborts the program with the given error.
type ErrorMsg struct {
	Err error
}

// DetectMode picks the output mode for out. Interactive rendering needs a
// terminal; anything else (pipes, files, buffers) falls back to plain, as
// does a dumb or unset TERM.
func DetectMode(out io.Writer, noProgress, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if noProgress {
		return ModePlain
	}
	if !isTerminal(out) {
		return ModePlain
	}
	return ModeTUI
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return false
		}
	}
	return true
}

// RunWithWork starts a bubbletea program around model, runs workFn in the
// background, and blocks until the program exits. workFn receives a send
// callback that forwards messages to the program with a short pause so the
// renderer keeps up.
func RunWithWork(out io.Writer, model ProgressModel, workFn func(send func(tea.Msg))) error {
	p := tea.NewProgram(model, tea.WithOutput(out))

	go func() {
		// Give the event loop time to draw the initial frame.
		time.Sleep(50 * time.Millisecond)

		workFn(func(msg tea.Msg) {
			p.Send(msg)
			// A batch of small projects flips stages faster than the
			// terminal repaints; the few extra milliseconds per update
			// keep the sweep visible without slowing real work.
			time.Sleep(5 * time.Millisecond)
		})

		p.Send(WorkDoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(ProgressModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
