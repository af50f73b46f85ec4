// Package logger constructs the zerolog application logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a leveled zerolog logger writing to out. Format "console" gives
// human-readable output for local development; anything else emits JSON.
// Unknown levels fall back to info.
func New(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "afterschool").Logger()
}

// NewDefault is the production logger: JSON at info level on stderr.
func NewDefault() zerolog.Logger {
	return New(os.Stderr, "info", "json")
}
