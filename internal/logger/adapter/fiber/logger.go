// Package fiber provides a zerolog based access log middleware for fiber.
package fiber

import (
	"io"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/campusclubs/clubhub/internal/logger"
)

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError is set on responses whose chain error could not be handled.
	CacheControlError string

	// CheckAliveURI is not logged when Config.DisableCheckAlive is set.
	CheckAliveURI string

	// RequestIDKey is the locals key holding the request id. Empty disables the field.
	RequestIDKey string

	// UserIDKey is the locals key holding the authenticated user id. Empty disables the field.
	UserIDKey string

	// Output overrides the configured writers. Used by tests.
	Output io.Writer
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "max-age=0",
	RequestIDKey:      "requestid",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// New creates a new fiber access logging middleware using zerolog.
// Chain errors are resolved through the app error handler before the status is logged.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	accessLogger := zerolog.New(accessWriter(&cfg)).With().Timestamp().Logger().Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := ctx.App().ErrorHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		logAccess(ctx, &cfg, accessLogger, start, chainErr)

		return nil
	}
}

func logAccess(ctx *fiber.Ctx, cfg *Config, l zerolog.Logger, start time.Time, chainErr error) {
	elapsed := time.Since(start).Seconds()
	ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

	if cfg.Config.DisableCheckAlive && cfg.CheckAliveURI != "" && ctx.Path() == cfg.CheckAliveURI {
		return
	}

	// ctx.Path keeps the path as sent, fasthttp only normalizes for routing.
	uri := ctx.Path()
	if len(ctx.Queries()) > 0 {
		uri += "?" + string(ctx.Request().URI().QueryString())
	}

	ev := l.Log().
		Str("IP", ctx.IP()).
		Int("status", ctx.Response().StatusCode()).
		Float64("X-Performance", elapsed).
		Str("URI", uri).
		Str("method", ctx.Method()).
		Bytes("host", ctx.Request().Host()).
		Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
		Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
		Str(fiber.HeaderOrigin, ctx.Get(fiber.HeaderOrigin))

	if cfg.RequestIDKey != "" {
		if id, ok := ctx.Locals(cfg.RequestIDKey).(string); ok {
			ev.Str("requestId", id)
		}
	}

	if cfg.UserIDKey != "" {
		if id, ok := ctx.Locals(cfg.UserIDKey).(uint64); ok {
			ev.Uint64("userId", id)
		}
	}

	if chainErr != nil {
		ev.Err(chainErr)
	}

	ev.Send()
}

func accessWriter(cfg *Config) io.Writer {
	if cfg.Output != nil {
		return cfg.Output
	}

	var writers []io.Writer

	if cfg.Config.File.Enabled {
		if w := newRollingAccessFile(&cfg.Config); w != nil {
			writers = append(writers, w)
		}
	}

	// EnableAccessLogToConsole does not overrule Console.Enabled.
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		if cfg.Config.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if len(writers) == 0 {
		return io.Discard
	}

	return zerolog.MultiLevelWriter(writers...)
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.File.Path, cfg.File.AccessLog),
		MaxSize:    cfg.File.AccessMaxSize,
		MaxAge:     cfg.File.AccessMaxAge,
		MaxBackups: cfg.File.AccessMaxBackups,
	}
}
