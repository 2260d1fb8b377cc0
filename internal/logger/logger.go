package logger

import (
	"os"

	"league-tracker/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger at the level named by LOG_LEVEL.
// Unrecognized or empty levels fall back to info rather than failing
// startup.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}
