// Package xlog is the structured logger used across the service.
// It wraps a zap logger and enriches every entry with the request data
// stored on the context (correlation id, client id, actor).
package xlog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

type Level = zapcore.Level

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	level      zapcore.Level
	env        string
	logTo      string
	withCaller bool
	callerSkip int
}

type Option func(*options)

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

// WithLogToOption selects the sink: "stdout" (default) or "stderr".
func WithLogToOption(logTo string) Option {
	return func(o *options) { o.logTo = logTo }
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

// Init builds the process wide logger. Calling it again replaces the logger.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, logTo: "stdout"}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)
	if o.env == "local" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	sink := zapcore.Lock(os.Stdout)
	if o.logTo == "stderr" {
		sink = zapcore.Lock(os.Stderr)
	}

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if o.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	l := zap.New(zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(o.level)), zapOpts...)

	mu.Lock()
	logger = l
	mu.Unlock()
}

// InitForTest installs a development logger writing to stderr.
func InitForTest() {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger exposes the underlying zap logger, e.g. for the New Relic bridge.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() {
	_ = Logger().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	return append(fields, fieldsFromContext(ctx)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	Logger().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	Logger().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	Logger().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	Logger().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	Logger().Panic(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	Logger().Fatal(fmt.Sprintf(format, args...), fieldsFromContext(ctx)...)
}

func String(key, val string) Field { return zap.String(key, val) }

func Strings(key string, val []string) Field { return zap.Strings(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val any) Field { return zap.Any(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Time(key string, val time.Time) Field { return zap.Time(key, val) }

func Err(err error) Field { return zap.Error(err) }
