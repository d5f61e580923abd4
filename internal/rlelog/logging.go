// Package rlelog builds the zap logger used by the TX/RX engines, in the
// same shape as mellowdrifter/rpkirtr2's internal/logging package: a level
// string in, a configured *zap.SugaredLogger out.
package rlelog

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a configured zap.SugaredLogger for the given level string
// ("debug", "info", "warn", "error", case-insensitive; anything else maps
// to "info").
func New(level string) *zap.SugaredLogger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zap.DebugLevel
	case "warn":
		zapLevel = zap.WarnLevel
	case "error":
		zapLevel = zap.ErrorLevel
	default:
		zapLevel = zap.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("rlelog: cannot initialize logger: " + err.Error())
	}

	return logger.Sugar()
}

// Nop returns a logger that discards everything, used as the default when
// a caller does not supply one via WithTransmitterLogger or
// WithReceiverLogger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
