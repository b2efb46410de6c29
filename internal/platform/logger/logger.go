// Package logger provides structured logging for the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"setgame/internal/config"
)

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// The second result is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup builds a text logger on stderr at the configured level and installs
// it as the slog default. Stdout is left to the board output.
func Setup(cfg config.LogConfig) *slog.Logger {
	return SetupWithWriter(cfg, os.Stderr)
}

// SetupWithWriter is Setup with an explicit destination.
func SetupWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(handler)
	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", level.String())
	}

	slog.SetDefault(l)
	return l
}
