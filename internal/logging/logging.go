// Package logging builds the slog loggers used by the commands.
//
// Logs always go to stderr: the MCP server owns stdout for the protocol and
// the pixelate command may write image data there.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name such as "debug", "info", "warn" or "error"
// (any case) to a slog.Level. An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// FromEnv creates a stderr logger at the level named by the environment
// variable key. An invalid value falls back to info and is reported through
// the returned logger.
func FromEnv(key string) *slog.Logger {
	level, err := ParseLevel(os.Getenv(key))
	logger := New(os.Stderr, level)
	if err != nil {
		logger.Warn("ignoring log level", "env", key, "error", err)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
