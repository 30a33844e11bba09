// Package logging builds the structured logger this operator installs as
// controller-runtime's global logger, grounded on cloupeer's pkg/log but
// driven by APP_LOGGING_FORMAT instead of a CLI flag.
package logging

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the zap core New builds.
type Options struct {
	// Format is "plain" or "json"; "plain" renders as zap's console
	// encoding, "json" as zap's json encoding.
	Format string

	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string
}

// DefaultOptions mirrors the teacher's NewOptions defaults, translated to
// this operator's plain/json vocabulary.
func DefaultOptions() Options {
	return Options{Format: "plain", Level: "info"}
}

// New builds a logr.Logger backed by zap, ready to install via
// ctrl.SetLogger.
func New(opts Options) (logr.Logger, error) {
	encoding := "console"
	if opts.Format == "json" {
		encoding = "json"
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:    "message",
		LevelKey:      "level",
		TimeKey:       "timestamp",
		NameKey:       "logger",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendFloat64(float64(d) / float64(time.Millisecond))
		},
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	cfg := &zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	core, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return logr.Discard(), fmt.Errorf("building zap logger: %w", err)
	}

	return zapr.NewLogger(core), nil
}
