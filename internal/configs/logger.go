package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. The local env gets a human
// readable console writer, everything else plain JSON.
func NewLogger(env string) zerolog.Logger {
	level := zerolog.InfoLevel
	if env == "local" {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if env == "local" {
		w := zerolog.NewConsoleWriter()
		w.TimeFormat = time.DateTime
		w.Out = os.Stdout
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
