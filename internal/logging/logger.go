// Package logging builds the zerolog logger shared by the server and tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"apicatalog/internal/config"
)

// New returns a logger writing to stderr.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns a logger writing to w. Format "console" is human readable,
// anything else is JSON. An unknown level falls back to info.
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
