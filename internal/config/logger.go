package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a human-readable logger writing to w.
// level is parsed into a zerolog level and defaults to InfoLevel on parse error.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
