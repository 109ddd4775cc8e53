// Package logging configures diagnostic logging on stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "VERIFY_SETUP_LOG_LEVEL"

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output receives log records. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig logs warnings and above to stderr, honoring EnvLevel.
func DefaultConfig() Config {
	level := os.Getenv(EnvLevel)
	if level == "" {
		level = "warn"
	}
	return Config{Level: level}
}

// New builds a text logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}))
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
