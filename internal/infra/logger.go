package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger constructs a zerolog.Logger for the given environment. Development
// gets human readable console output at debug level, everything else JSON.
func NewLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "outreach-api").
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger
}

// Logger aliases the zerolog.Logger so callers outside the infra package can
// depend on the logging contract without importing the third-party module.
type Logger = zerolog.Logger

// GooseLogger routes goose migration output through zerolog.
type GooseLogger struct {
	L zerolog.Logger
}

func (g GooseLogger) Printf(format string, v ...any) {
	g.L.Info().Str("component", "migrate").Msgf(format, v...)
}

func (g GooseLogger) Fatalf(format string, v ...any) {
	g.L.Fatal().Str("component", "migrate").Msgf(format, v...)
}
