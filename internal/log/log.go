// Package log provides structured logging for testmodule using zap.
package log

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with testmodule-specific helpers.
type Logger struct {
	*zap.Logger
}

var (
	// L is the global logger instance. It is a no-op logger until Init runs.
	L    = NewNop()
	once sync.Once
)

// Init initializes the global logger. Only the first call takes effect.
func Init(level string, development bool) {
	once.Do(func() {
		L = New(level, development)
	})
}

// InitWith installs l as the global logger. Only the first call to Init
// or InitWith takes effect.
func InitWith(l *Logger) {
	once.Do(func() {
		L = l
	})
}

// New creates a Logger at the given level. An unparseable level falls back
// to warn.
func New(level string, development bool) *Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return &Logger{Logger: logger}
}

// NewNop creates a no-op logger for tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel parses debug, info, warn or error. The empty string is warn.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", s)
}

// Rejected logs a call refused at the C boundary.
func (l *Logger) Rejected(fn string, err error, fields ...zap.Field) {
	l.Debug("rejected", append([]zap.Field{zap.String("fn", fn), zap.Error(err)}, fields...)...)
}
