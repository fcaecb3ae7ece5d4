// Package logging configures the process-wide slog logger used by the
// commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "GOPRIM_LOG_LEVEL"

// UserLevel is the level the default logger was last configured with.
var UserLevel = slog.LevelWarn

// ParseLevel reads a level name such as "debug" or "WARN". Unknown names
// yield def.
func ParseLevel(s string, def slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return def
	}
	return l
}

// Level picks the level from the verbose flag and the environment. The
// environment wins when set.
func Level(verbose bool) slog.Level {
	def := slog.LevelWarn
	if verbose {
		def = slog.LevelDebug
	}
	if v, ok := os.LookupEnv(EnvLevel); ok {
		return ParseLevel(v, def)
	}
	return def
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a stderr logger as the slog default.
func Setup(verbose bool) *slog.Logger {
	UserLevel = Level(verbose)
	logger := New(os.Stderr, UserLevel)
	slog.SetDefault(logger)
	return logger
}
