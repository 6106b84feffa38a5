// Package logging provides a shared, structured logger for room-area.
//
// It wraps [log/slog] behind a single initialization point so every
// component shares one handler and level. The level comes from
// ROOM_AREA_LOG_LEVEL (debug, info, warn, error; default info).
//
// Output goes to stderr unless ROOM_AREA_LOG_FILE names a file, in which
// case entries are appended there and the full-screen UI stays clean.
//
// Usage:
//
//	log := logging.New("store")
//	log.Warn("discard stored rows", "error", err)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component=<component>. An empty
// component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(openOutput(os.Getenv("ROOM_AREA_LOG_FILE")), &slog.HandlerOptions{
			Level: parseLevel(os.Getenv("ROOM_AREA_LOG_LEVEL")),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// openOutput falls back to stderr when path is blank or cannot be opened.
func openOutput(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel maps a level name to a [slog.Level]; unknown names are INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
