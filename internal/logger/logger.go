package logger

import (
	"os"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/config"
)

// New builds the root logger at the level named in the loaded config, so
// levels set via .env take effect. Unknown level names fall back to info.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		return logger.Level(level)
	}
	return logger.Level(zerolog.InfoLevel)
}
