package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twardoch/tscprojpy/internal/scale"
)

// ScaleReporter bridges scale.ProgressReporter callbacks onto bubbletea
// messages. The caller supplies the key and field mappings, keeping column
// layout knowledge out of this package.
type ScaleReporter struct {
	send           func(tea.Msg)
	keyFromJob     func(scale.Job) string
	stageFields    func(scale.Job, string) map[string]string
	completeFields func(scale.Result) map[string]string
}

// NewScaleReporter builds a reporter from the given mapping functions.
func NewScaleReporter(
	send func(tea.Msg),
	keyFromJob func(scale.Job) string,
	stageFields func(scale.Job, string) map[string]string,
	completeFields func(scale.Result) map[string]string,
) *ScaleReporter {
	return &ScaleReporter{
		send:           send,
		keyFromJob:     keyFromJob,
		stageFields:    stageFields,
		completeFields: completeFields,
	}
}

// Stage implements scale.ProgressReporter.
func (r *ScaleReporter) Stage(job scale.Job, stage string) {
	r.send(RowUpdateMsg{
		Key:    r.keyFromJob(job),
		Fields: r.stageFields(job, stage),
	})
}

// Complete implements scale.ProgressReporter.
func (r *ScaleReporter) Complete(res scale.Result) {
	r.send(RowUpdateMsg{
		Key:    r.keyFromJob(res.Job),
		Fields: r.completeFields(res),
	})
}
