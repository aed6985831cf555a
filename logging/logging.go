// Package logging owns the process-wide zerolog logger. Packages keep a
// pointer to Log so Setup takes effect everywhere.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup replaces Log. An unknown level falls back to info and is reported.
func Setup(w io.Writer, level string, pretty bool) {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	Log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if err != nil {
		Log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

// Silence is for tests.
func Silence() {
	Log = zerolog.Nop()
}
