package database

import (
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// zerologWriter feeds gorm's logger output into zerolog.
type zerologWriter struct {
	log zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(zerologWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
