// Package logging wraps zap with the sink/rotation conventions the teacher
// repo's logging package used, trimmed to what a search re-ranking service
// needs: console/file sinks, correlation-id fields, and leveled helpers.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink configures rotation for a file sink (spec ambient "Logging").
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// Config configures a Logger.
type Config struct {
	Service      string
	Environment  string
	Level        string // debug, info, warn, error
	ConsoleSink  bool
	FileSink     *FileSink
	StaticFields map[string]any
}

// DefaultConfig returns {Service: "meilirank", Level: "info", ConsoleSink: true}.
func DefaultConfig() Config {
	return Config{Service: "meilirank", Level: "info", ConsoleSink: true}
}

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap *zap.Logger
}

// New builds a Logger from config. At least one of ConsoleSink or FileSink
// must be set, or the logger discards everything.
func New(cfg Config) (*Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := parseLevel(cfg.Level)
	atomicLevel := zap.NewAtomicLevelAt(level)

	var cores []zapcore.Core
	if cfg.ConsoleSink {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			atomicLevel,
		))
	}
	if cfg.FileSink != nil {
		lumber := &lumberjack.Logger{
			Filename:   cfg.FileSink.Path,
			MaxSize:    cfg.FileSink.MaxSizeMB,
			MaxAge:     cfg.FileSink.MaxAgeDays,
			MaxBackups: cfg.FileSink.MaxBackups,
			Compress:   cfg.FileSink.Compress,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(lumber),
			atomicLevel,
		))
	}

	core := zapcore.NewTee(cores...)
	opts := []zap.Option{zap.AddCaller()}

	fields := []zap.Field{zap.String("service", cfg.Service)}
	if cfg.Environment != "" {
		fields = append(fields, zap.String("environment", cfg.Environment))
	}
	for k, v := range cfg.StaticFields {
		fields = append(fields, zap.Any(k, v))
	}
	opts = append(opts, zap.Fields(fields...))

	return &Logger{zap: zap.New(core, opts...)}, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithCorrelationID returns a child Logger tagging every entry with the
// given correlation id (apperrors.GenerateCorrelationID produces one per
// request).
func (l *Logger) WithCorrelationID(id string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("correlation_id", id))}
}

// Debug logs a per-strategy-call diagnostic.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs a completed-search summary.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs a recoverable problem (e.g. a degraded strategy).
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs an index failure or other fatal-to-the-request condition.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.zap.Sync() }
