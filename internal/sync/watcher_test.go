package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustpress-net/almanac/internal/config"
)

func setupWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("ALMANAC_DATA_DIR", dataDir)

	watcher, err := NewWatcher()
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	t.Cleanup(watcher.Stop)

	return watcher, dataDir
}

func TestWatcherEmitsOnConfigWrite(t *testing.T) {
	watcher, dataDir := setupWatcher(t)

	path := filepath.Join(dataDir, config.ConfigName)
	if err := os.WriteFile(path, []byte("locale: fr\nfirst_day_of_week: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	select {
	case change := <-watcher.Changes():
		if change.Settings.Locale != "fr" {
			t.Errorf("locale = %q, want %q", change.Settings.Locale, "fr")
		}
		if change.Settings.FirstDayOfWeek != 1 {
			t.Errorf("firstDayOfWeek = %d, want 1", change.Settings.FirstDayOfWeek)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for settings change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	watcher, dataDir := setupWatcher(t)

	path := filepath.Join(dataDir, "scratch.txt")
	if err := os.WriteFile(path, []byte("not a config\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case change := <-watcher.Changes():
		t.Fatalf("unexpected settings change: %+v", change)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherKeepsSettingsOnMalformedConfig(t *testing.T) {
	watcher, dataDir := setupWatcher(t)

	path := filepath.Join(dataDir, config.ConfigName)
	if err := os.WriteFile(path, []byte("locale: [broken\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// A parse failure is logged, never published.
	select {
	case change := <-watcher.Changes():
		t.Fatalf("unexpected settings change: %+v", change)
	case <-time.After(300 * time.Millisecond):
	}
}
