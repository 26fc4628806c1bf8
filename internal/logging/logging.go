// Package logging builds the zerolog logger used for diagnostic output.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// With debug set every event is printed; otherwise only warnings and above.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
