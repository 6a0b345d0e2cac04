// SPDX-License-Identifier: MIT

// Package logger provides the process-wide structured logger of taxasum.
// Logs go to stderr by default so that tables and charts written to stdout
// stay clean.
package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
)

type contextKey string

const (
	// CommandKey tags log lines with the running subcommand.
	CommandKey contextKey = "command"
	// InputKey tags log lines with the abundance file being processed.
	InputKey contextKey = "input"
)

// Config represents logger configuration.
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	OutputPaths []string
}

// DefaultConfig logs info and above as console text to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Encoding: "console", OutputPaths: []string{"stderr"}}
}

// New builds a zap logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Development,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if cfg.Development {
		l = l.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return l, nil
}

// Init replaces the global logger with one built from cfg.
// On error the previous logger stays in place.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Set(l)

	return nil
}

// Set installs l as the global logger (tests use zaptest/observer loggers).
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Get returns the global logger, building the default one on first use.
func Get() *zap.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	l, err := New(DefaultConfig())
	if err != nil {
		l, _ = zap.NewProduction()
	}
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = l
	}

	return global
}

// WithContext returns the global logger annotated with the command and
// input carried by ctx.
func WithContext(ctx context.Context) *zap.Logger {
	l := Get()
	if cmd, ok := ctx.Value(CommandKey).(string); ok {
		l = l.With(zap.String("command", cmd))
	}
	if in, ok := ctx.Value(InputKey).(string); ok {
		l = l.With(zap.String("input", in))
	}

	return l
}

// Sync flushes the global logger; errors from syncing terminals are ignored.
func Sync() {
	_ = Get().Sync()
}
