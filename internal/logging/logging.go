// Package logging configures the process-wide zerolog logger. CLI runs log
// human-readable lines to stderr; TUI sessions log to a file because stderr
// is the UI surface.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. verbose lowers the level to debug;
// logFile, when non-empty, redirects output there (appending).
func Setup(verbose bool, logFile string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var sink io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		sink = f
	}

	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
	return nil
}

// Component creates a logger tagged with a component identifier.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
