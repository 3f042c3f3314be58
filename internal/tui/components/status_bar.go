package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Bold(true)
)

// StatusBar shows the focused section and the currently selected date.
type StatusBar struct {
	width   int
	section string
	value   string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{value: "no date selected"}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetSection sets the focused section name
func (sb *StatusBar) SetSection(section string) {
	sb.section = section
}

// SetValue sets the selected-date text
func (sb *StatusBar) SetValue(value string) {
	if value == "" {
		value = "no date selected"
	}
	sb.value = value
}

// View renders the status bar
func (sb *StatusBar) View() string {
	left := sb.section + " "
	right := statusValueStyle.Render(sb.value)

	line := left + right

	// Truncate section text if the bar is narrow
	if sb.width > 4 && lipgloss.Width(line) > sb.width-2 {
		line = right
	}

	return statusBarStyle.Width(sb.width).Render(line)
}
