// Package logging provides the operator-facing diagnostic stream: a
// zerolog.Logger written to stderr, kept strictly separate from the
// machine-readable records tri-ops writes to stdout and to the state
// directory. Grounded on cuemby-warren's pkg/log package.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentops/tri-ops/internal/config"
)

// Logger is the global diagnostic logger, configured once by Init.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init configures the global Logger from a resolved Config. Output defaults
// to stderr; tests may pass a different writer through InitWriter.
func Init(cfg *config.Config) {
	InitWriter(cfg, os.Stderr)
}

// InitWriter is Init with an explicit output writer, for tests that need to
// capture log lines.
func InitWriter(cfg *config.Config, out io.Writer) {
	level := parseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if cfg.LogJSON {
		Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func parseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a child logger tagged with the emitting package,
// e.g. "queue", "lock", "gc".
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}
