package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rustpress-net/almanac/internal/config"
	"github.com/rustpress-net/almanac/internal/logger"
)

// SettingsChange is emitted when config.yaml has been rewritten on disk
// and re-parsed.
type SettingsChange struct {
	Settings config.Settings
}

// Watcher watches the data directory for settings file changes so a running
// TUI can pick up edits to config.yaml without restarting.
type Watcher struct {
	watcher       *fsnotify.Watcher
	changes       chan SettingsChange
	done          chan struct{}
	debounceTimer *time.Timer
}

// NewWatcher creates a new settings watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		changes: make(chan SettingsChange, 4),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the data directory.
func (w *Watcher) Start() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return fmt.Errorf("failed to get data directory: %w", err)
	}

	if err := w.watcher.Add(dataDir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher. The changes channel is left open because a
// debounced reload may still be in flight; done gates any late publish.
func (w *Watcher) Stop() {
	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
}

// Changes returns the channel of settings change notifications.
func (w *Watcher) Changes() <-chan SettingsChange {
	return w.changes
}

// watch is the main event loop. Editors tend to fire several Write events
// per save, so reloads are debounced.
func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != config.ConfigName {
				continue
			}

			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("settings watcher error", "error", err)
		}
	}
}

// reload re-parses config.yaml and publishes the result.
func (w *Watcher) reload() {
	settings, err := config.LoadSettings()
	if err != nil {
		logger.Warn("settings reload failed, keeping previous settings", "error", err)
		return
	}

	select {
	case <-w.done:
	case w.changes <- SettingsChange{Settings: settings}:
		logger.Debug("settings reloaded",
			"locale", settings.Locale,
			"firstDayOfWeek", settings.FirstDayOfWeek)
	default:
		// Drop the event if the TUI is not draining the channel.
	}
}
