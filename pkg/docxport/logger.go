package docxport

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger     *zap.Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		globalLogger = newLogger(config.LogLevel)
	})
}

// newLogger builds a production logger at the given level. Unknown level
// strings fall back to info.
func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the global logger. Pass zap.NewNop() to silence the
// package entirely.
func SetLogger(logger *zap.Logger) {
	initGlobalLogger()
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	globalLogger = logger
}

// UpdateLoggerFromConfig rebuilds the global logger from the current global
// configuration.
func UpdateLoggerFromConfig() {
	initGlobalLogger()
	config := GetGlobalConfig()
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = newLogger(config.LogLevel)
}
