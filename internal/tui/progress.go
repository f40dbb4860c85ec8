package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const marqueeGap = "   "

// Column defines a single column in the progress table.
type Column struct {
	Header string
	Width  int
}

// Row holds the field values for a single table row.
type Row struct {
	Key    string
	Fields []string
}

// ProgressModel is a bubbletea model that renders one row per file while a
// batch runs. Columns are fixed at construction; widths, the header line and
// the STATUS column index are computed once up front.
type ProgressModel struct {
	columns  []Column
	widths   []int
	colIndex map[string]int
	header   string

	rows     []Row
	rowIndex map[string]int

	title string
	done  bool
	err   error

	// statusCol is -1 when no STATUS column exists.
	statusCol int

	// Animation state. The spinner tick doubles as the marquee clock.
	spinner spinner.Model
	tick    int
}

// NewProgressModel creates a progress model. The title is shown in the
// footer next to the processed counter.
func NewProgressModel(title string, columns []Column) ProgressModel {
	widths := make([]int, len(columns))
	colIndex := make(map[string]int, len(columns))
	statusCol := -1
	headerParts := make([]string, len(columns))

	for i, c := range columns {
		widths[i] = c.Width
		if len(c.Header) > widths[i] {
			widths[i] = len(c.Header)
		}
		colIndex[c.Header] = i
		if strings.EqualFold(c.Header, "STATUS") {
			statusCol = i
		}
		headerParts[i] = HeaderStyle.Render(padCell(c.Header, widths[i]))
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("4"))),
	)

	return ProgressModel{
		columns:   columns,
		widths:    widths,
		colIndex:  colIndex,
		header:    strings.Join(headerParts, "  "),
		rowIndex:  make(map[string]int),
		title:     title,
		statusCol: statusCol,
		spinner:   sp,
	}
}

// AddRow pre-populates a row. Call this before the program starts.
func (m *ProgressModel) AddRow(key string, fields []string) {
	padded := make([]string, len(m.columns))
	copy(padded, fields)
	m.rowIndex[key] = len(m.rows)
	m.rows = append(m.rows, Row{Key: key, Fields: padded})
}

// Init satisfies the tea.Model interface.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update satisfies the tea.Model interface.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.tick++
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RowUpdateMsg:
		m.applyRowUpdate(msg)
		return m, nil

	case WorkDoneMsg:
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *ProgressModel) applyRowUpdate(msg RowUpdateMsg) {
	idx, ok := m.rowIndex[msg.Key]
	if !ok {
		return
	}
	row := &m.rows[idx]
	for name, val := range msg.Fields {
		if j, ok := m.colIndex[name]; ok {
			row.Fields[j] = val
		}
	}
}

// View satisfies the tea.Model interface.
func (m ProgressModel) View() string {
	if m.done && m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	var b strings.Builder
	b.WriteString(m.header)
	b.WriteByte('\n')

	for _, row := range m.rows {
		cells := make([]string, len(m.columns))
		for i := range m.columns {
			cells[i] = m.cell(row, i)
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}

	if !m.done {
		processed, total := m.progressCounts()
		fmt.Fprintf(&b, "\n%s %s %d/%d\n", m.spinner.View(), m.title, processed, total)
	}

	return b.String()
}

// cell renders one field clipped to its column width. Values that overflow
// scroll as a marquee while work is running and get an ellipsis once done.
func (m ProgressModel) cell(row Row, i int) string {
	val := ""
	if i < len(row.Fields) {
		val = row.Fields[i]
	}
	width := m.widths[i]

	if !m.done && len(strings.TrimSpace(val)) > width {
		val = marqueeText(val, width, m.tick)
	} else {
		val = TruncateWithEllipsis(val, width)
	}

	if i == m.statusCol {
		return StatusStyle(val).Render(padCell(val, width))
	}
	return padCell(val, width)
}

// progressCounts reports how many rows have left the pending state.
func (m ProgressModel) progressCounts() (processed, total int) {
	total = len(m.rows)
	if m.statusCol < 0 {
		return 0, total
	}
	for _, row := range m.rows {
		if m.statusCol >= len(row.Fields) {
			continue
		}
		switch strings.TrimSpace(row.Fields[m.statusCol]) {
		case "", "pending":
		default:
			processed++
		}
	}
	return processed, total
}

// Done returns whether the model has finished (work done or error).
func (m ProgressModel) Done() bool {
	return m.done
}

// Err returns any fatal error that occurred.
func (m ProgressModel) Err() error {
	return m.err
}

func padCell(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// marqueeText slides a window over text that exceeds width, wrapping around
// with a short gap between cycles.
func marqueeText(text string, width, tick int) string {
	text = strings.TrimSpace(text)
	if width <= 0 {
		return ""
	}
	if len(text) <= width {
		return text
	}
	loop := text + marqueeGap
	offset := tick % len(loop)
	doubled := loop + loop
	return doubled[offset : offset+width]
}

// NonEmptyOrDash returns "-" for empty or whitespace strings.
func NonEmptyOrDash(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return value
}

// TruncateWithEllipsis clips value to max characters, marking the cut with
// "..." when there is room for it.
func TruncateWithEllipsis(value string, max int) string {
	value = strings.TrimSpace(value)
	switch {
	case max <= 0:
		return ""
	case len(value) <= max:
		return value
	case max <= 3:
		return value[:max]
	}
	return value[:max-3] + "..."
}
