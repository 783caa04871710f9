package logutil

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the process-wide logger: JSON lines in production,
// human-readable console output in development.
func Setup(production bool, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if production {
		return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
