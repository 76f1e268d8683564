package logger

import (
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	once         sync.Once
)

// Init initializes the global logger. Format is "json" or "console". Only the
// first call, from Init or Get, takes effect.
func Init(level, format string) error {
	var err error
	once.Do(func() {
		var l *zap.Logger
		l, err = New(level, format)
		if err != nil {
			l = zap.NewNop()
		}
		globalLogger.Store(l)
	})
	return err
}

// Get returns the global logger, falling back to an info-level console logger
// when Init has not been called.
func Get() *zap.Logger {
	_ = Init("info", "console")
	return globalLogger.Load()
}

// Sync flushes any buffered log entries.
func Sync() {
	if l := globalLogger.Load(); l != nil {
		_ = l.Sync()
	}
}

// New builds a standalone logger.
func New(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}
