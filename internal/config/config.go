package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	AppName    = "almanac"
	DbName     = "almanac.db"
	ConfigName = "config.yaml"
)

// DataDir returns the path to the almanac data directory (~/.almanac/),
// creating it if needed. ALMANAC_DATA_DIR overrides it (primarily for
// testing).
func DataDir() (string, error) {
	if dataDir := os.Getenv("ALMANAC_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// DatabasePath returns the path to the SQLite database (~/.almanac/almanac.db).
func DatabasePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, DbName), nil
}

// ConfigPath returns the path to the settings file (~/.almanac/config.yaml).
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigName), nil
}

// Settings holds the picker defaults read from config.yaml. Pointer fields
// distinguish "unset" from an explicit false so the feature toggles can
// default to on.
type Settings struct {
	Locale           string `yaml:"locale"`
	FirstDayOfWeek   int    `yaml:"first_day_of_week"`
	Format           string `yaml:"format"`
	ShowWeekNumbers  *bool  `yaml:"show_week_numbers"`
	ShowTodayButton  *bool  `yaml:"show_today_button"`
	ShowClearButton  *bool  `yaml:"show_clear_button"`
	DisabledWeekdays []int  `yaml:"disabled_weekdays"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Locale:         "en",
		FirstDayOfWeek: 0,
		Format:         "yyyy-MM-dd",
	}
}

// LoadSettings reads config.yaml from the data directory. A missing file
// yields the defaults; a malformed file also degrades to defaults with the
// parse error returned so the caller can warn.
func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if settings.FirstDayOfWeek < 0 || settings.FirstDayOfWeek > 6 {
		settings.FirstDayOfWeek = 0
	}

	return settings, nil
}

// SaveSettings writes settings to config.yaml in the data directory.
func SaveSettings(settings Settings) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
