package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustpress-net/almanac/internal/config"
	"github.com/rustpress-net/almanac/internal/logger"
	"github.com/rustpress-net/almanac/internal/storage"
)

// Command Builders
//
// These methods create tea.Cmd functions for async operations. All model
// values a closure needs are captured before the closure is returned, since
// the model may change before the command runs.

// marksLoadedMsg carries the marked dates read from storage.
type marksLoadedMsg struct {
	marks []storage.Mark
}

// settingsChangedMsg carries settings reloaded from config.yaml.
type settingsChangedMsg struct {
	settings config.Settings
}

// errMsg wraps an error surfaced to the status line.
type errMsg struct {
	err error
}

// loadMarks reads the marked dates from the repository.
func (m *Model) loadMarks() tea.Cmd {
	capturedRepo := m.marks
	if capturedRepo == nil {
		return nil
	}
	return func() tea.Msg {
		marks, err := capturedRepo.ListMarks()
		if err != nil {
			return errMsg{err: err}
		}
		logger.Debug("tui: marks loaded", "count", len(marks))
		return marksLoadedMsg{marks: marks}
	}
}

// waitForSettingsChange blocks on the watcher channel and republishes the
// next settings reload as a message. Re-issued after each receive.
func (m *Model) waitForSettingsChange() tea.Cmd {
	capturedWatcher := m.watcher
	if capturedWatcher == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-capturedWatcher.Changes()
		if !ok {
			return nil
		}
		return settingsChangedMsg{settings: change.Settings}
	}
}
