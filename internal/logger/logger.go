package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	logLevel slog.Level
	once     sync.Once
)

func init() {
	Initialize()
}

// Initialize sets up the package logger from the environment:
// LOG_LEVEL (DEBUG/INFO/WARN/ERROR), ALMANAC_DEBUG=1 as a shorthand for
// DEBUG, and LOG_FORMAT=json for JSON output. Safe to call more than once.
func Initialize() {
	once.Do(func() {
		levelStr := os.Getenv("LOG_LEVEL")
		if levelStr == "" {
			if v := os.Getenv("ALMANAC_DEBUG"); v == "1" || v == "true" {
				levelStr = "DEBUG"
			} else {
				levelStr = "INFO"
			}
		}

		switch strings.ToUpper(levelStr) {
		case "DEBUG":
			logLevel = slog.LevelDebug
		case "WARN", "WARNING":
			logLevel = slog.LevelWarn
		case "ERROR":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: logLevel}
		var handler slog.Handler
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}

		logger = slog.New(handler)
	})
}

// GetLogger returns the package logger, initializing it if needed.
func GetLogger() *slog.Logger {
	if logger == nil {
		Initialize()
	}
	return logger
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
