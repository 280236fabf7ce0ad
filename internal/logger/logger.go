// Package logger builds the zerolog logger shared by the server, the
// database layer and the request middleware.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"tenanttheme/internal/config"
)

// New returns a logger writing to w in the configured format and level.
func New(cfg config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := w
	if cfg.Format == "" || cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", config.ServiceName).
		Logger(), nil
}
