package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustpress-net/almanac/internal/logger"
)

// keyMap defines the shell-level bindings. Component-level navigation
// (cursor movement, month/year paging) lives in the components themselves.
type keyMap struct {
	Quit        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection},
		{k.Help, k.Quit},
	}
}

// handleKeyPress is the main keyboard input dispatcher. An open popover
// takes all input; otherwise shell bindings run first and everything else
// goes to the focused section.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil && m.picker.IsOpen() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()

	case key.Matches(msg, m.keys.NextSection):
		return m.handleSectionChange(1)

	case key.Matches(msg, m.keys.PrevSection):
		return m.handleSectionChange(-1)

	case key.Matches(msg, m.keys.Help):
		m.helpMode = !m.helpMode
		return m, nil
	}

	return m.handleComponentKeys(msg)
}

// handleQuit stops the watcher and exits.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

// handleSectionChange cycles focus by delta sections.
func (m *Model) handleSectionChange(delta int) (tea.Model, tea.Cmd) {
	oldSection := m.focused
	m.focused = Section((int(m.focused) + delta + int(SectionCount)) % int(SectionCount))

	if m.picker != nil {
		if m.focused == SectionPicker {
			m.picker.Focus()
		} else {
			m.picker.Blur()
		}
	}

	logger.Debug("tui: section changed",
		"oldSection", sectionName(oldSection),
		"newSection", sectionName(m.focused))

	if m.statusBar != nil {
		m.statusBar.SetSection(sectionName(m.focused))
	}

	return m, nil
}

// handleComponentKeys delegates key handling to the focused component.
func (m *Model) handleComponentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focused {
	case SectionPicker:
		if m.picker != nil {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}

	case SectionInline:
		if m.inlineCal != nil {
			var cmd tea.Cmd
			m.inlineCal, cmd = m.inlineCal.Update(msg)
			return m, cmd
		}

	case SectionMini:
		if m.mini != nil {
			var cmd tea.Cmd
			m.mini, cmd = m.mini.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}
