package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as a warning.
const slowQueryThreshold = 200 * time.Millisecond

// logger writes gorm logs with zerolog.
type logger struct {
	Logger zerolog.Logger
}

// LogMode maps the gorm log level to a zerolog level. gorm.Info traces
// every statement.
func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	zl := zerolog.DebugLevel
	switch level {
	case gorm_logger.Silent:
		zl = zerolog.Disabled
	case gorm_logger.Error:
		zl = zerolog.ErrorLevel
	case gorm_logger.Warn:
		zl = zerolog.WarnLevel
	}

	return &logger{Logger: l.Logger.Level(zl)}
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	// Missing transactions, debts or budgets are answered with 404
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
		return
	}

	if elapsed > slowQueryThreshold {
		l.Logger.Warn().Fields(fields).Msg("[GORM] slow query")
		return
	}

	l.Logger.Debug().Fields(fields).Msg("[GORM] query")
}
