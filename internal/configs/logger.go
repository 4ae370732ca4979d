package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. Dev runs get a console writer and
// debug level; anything else logs structured JSON at info.
func NewLogger(env string) zerolog.Logger {
	w := io.Writer(os.Stdout)
	level := zerolog.InfoLevel

	if env == "dev" {
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.Out = os.Stdout
		consoleWriter.TimeFormat = time.DateTime
		w = consoleWriter
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
