// Package gormlogger routes gorm logging to zerolog.
package gormlogger

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// Config of the gorm logger adapter.
type Config struct {
	// SlowThreshold marks queries taking longer as slow, logged at warn level. Zero disables it.
	SlowThreshold time.Duration
	// IgnoreRecordNotFound suppresses gorm.ErrRecordNotFound errors.
	IgnoreRecordNotFound bool
	// LogLevel is the gorm level, traces are only written at glogger.Info.
	LogLevel glogger.LogLevel
}

// Logger implements gorm's logger.Interface on top of a zerolog logger.
type Logger struct {
	cfg Config
	zl  *zerolog.Logger
}

// New returns a gorm logger writing to l. A nil l uses the global zerolog logger at call time.
func New(l *zerolog.Logger, cfg Config) *Logger {
	return &Logger{cfg: cfg, zl: l}
}

func (l *Logger) logger() *zerolog.Logger {
	if l.zl != nil {
		return l.zl
	}

	return &log.Logger
}

// LogMode returns a copy of the logger with level set.
func (l *Logger) LogMode(level glogger.LogLevel) glogger.Interface {
	n := *l
	n.cfg.LogLevel = level

	return &n
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, data ...any) {
	if l.cfg.LogLevel >= glogger.Info {
		l.logger().Info().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, data ...any) {
	if l.cfg.LogLevel >= glogger.Warn {
		l.logger().Warn().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, data ...any) {
	if l.cfg.LogLevel >= glogger.Error {
		l.logger().Error().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace logs a finished statement: failures at error, slow statements at warn, the rest at trace.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.cfg.LogLevel <= glogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.cfg.LogLevel >= glogger.Error &&
		(!l.cfg.IgnoreRecordNotFound || !errors.Is(err, gorm.ErrRecordNotFound)):
		sql, rows := fc()
		l.logger().Error().Ctx(ctx).Err(err).
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Int64("rows", rows).
			Str("sql", sql).
			Msg("query failed")
	case l.cfg.SlowThreshold != 0 && elapsed > l.cfg.SlowThreshold && l.cfg.LogLevel >= glogger.Warn:
		sql, rows := fc()
		l.logger().Warn().Ctx(ctx).
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Dur("threshold", l.cfg.SlowThreshold).
			Int64("rows", rows).
			Str("sql", sql).
			Msg("slow query")
	case l.cfg.LogLevel >= glogger.Info:
		sql, rows := fc()
		l.logger().Trace().Ctx(ctx).
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Int64("rows", rows).
			Str("sql", sql).
			Msg("query")
	}
}

// Level maps a zerolog level to the closest gorm level.
func Level(l zerolog.Level) glogger.LogLevel {
	switch {
	case l <= zerolog.DebugLevel:
		return glogger.Info
	case l <= zerolog.WarnLevel:
		return glogger.Warn
	case l <= zerolog.PanicLevel:
		return glogger.Error
	default:
		return glogger.Silent
	}
}
