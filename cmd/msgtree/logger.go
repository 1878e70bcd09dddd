package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logConfig is the logging part of the CLI configuration.
type logConfig struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Quiet      bool
}

// newLogger builds the CLI logger: a console core on stderr plus, when File is set, a JSON
// core on a rotating file. Quiet drops the console core.
func newLogger(cfg logConfig, stderr io.Writer) (*zap.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006/01/02 - 15:04:05"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	if !cfg.Quiet {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(stderr),
			atomicLevel,
		))
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		if cfg.MaxSize <= 0 {
			cfg.MaxSize = 10 // MB
		}
		if cfg.MaxBackups <= 0 {
			cfg.MaxBackups = 5
		}
		if cfg.MaxAge <= 0 {
			cfg.MaxAge = 7 // days
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(rotating),
			atomicLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("msgtree"), nil
}
