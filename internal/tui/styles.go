package tui

import "github.com/charmbracelet/lipgloss"

// HeaderStyle styles the column header row.
var HeaderStyle = lipgloss.NewStyle().Bold(true)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	pendingStyle = lipgloss.NewStyle().Faint(true)
)

var statusStyles = map[string]lipgloss.Style{
	"scaled":  doneStyle,
	"saved":   doneStyle,
	"loading": activeStyle,
	"scaling": activeStyle,
	"saving":  activeStyle,
	"skipped": warnStyle,
	"warned":  warnStyle,
	"error":   errorStyle,
	"pending": pendingStyle,
}

// StatusStyle returns the style for a status cell, defaulting to no styling
// for statuses it does not know.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
