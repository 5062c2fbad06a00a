package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// DBLogConfig configures the zerolog backed gorm logger
type DBLogConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	ParameterizedQueries      bool
	LogLevel                  logger.LogLevel
	zeroLogger                zerolog.Logger
}

// NewDBLogger returns a gorm logger.Interface writing structured events through zerolog
func NewDBLogger(config DBLogConfig) logger.Interface {
	return &dbLogger{DBLogConfig: config}
}

func zeroLogToGormLevel(level zerolog.Level) logger.LogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel, zerolog.InfoLevel:
		return logger.Info
	case zerolog.WarnLevel:
		return logger.Warn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return logger.Error
	case zerolog.Disabled:
		return logger.Silent
	default:
		return logger.Info
	}
}

type dbLogger struct {
	DBLogConfig
}

// LogMode log mode
func (l *dbLogger) LogMode(level logger.LogLevel) logger.Interface {
	newlogger := *l
	newlogger.LogLevel = level
	return &newlogger
}

func (l *dbLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		l.zeroLogger.Info().Ctx(ctx).Msgf(msg, data...)
	}
}

func (l *dbLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		l.zeroLogger.Warn().Ctx(ctx).Msgf(msg, data...)
	}
}

func (l *dbLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		l.zeroLogger.Error().Ctx(ctx).Msgf(msg, data...)
	}
}

// Trace logs one event per statement: errors at error level, slow statements
// at warn level and everything else only in info mode.
func (l *dbLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	var event *zerolog.Event
	switch {
	case err != nil && l.LogLevel >= logger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFoundError):
		event = l.zeroLogger.Error().Err(err)
	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= logger.Warn:
		event = l.zeroLogger.Warn().Str("slow", fmt.Sprintf(">= %v", l.SlowThreshold))
	case l.LogLevel == logger.Info:
		event = l.zeroLogger.Debug()
	default:
		return
	}

	sql, rows := fc()
	event = event.Ctx(ctx).
		Str("caller", utils.FileWithLineNum()).
		Float64("elapsed_ms", float64(elapsed.Nanoseconds())/1e6)
	if rows >= 0 {
		event = event.Int64("rows", rows)
	}
	event.Msg(sql)
}

// ParamsFilter drops query params from logged statements when ParameterizedQueries is set
func (l *dbLogger) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	if l.ParameterizedQueries {
		return sql, nil
	}
	return sql, params
}
