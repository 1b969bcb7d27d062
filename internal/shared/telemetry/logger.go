package telemetry

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = newLogger("dev")
)

// Init replaces the package logger for the given environment. Production
// uses zap's JSON encoder; anything else gets the development console
// encoder.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(env)
}

// Sync flushes buffered log output; call it on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Info(msg, toZapFields(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Error(msg, toZapFields(fields)...)
}

func newLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" || env == "staging" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return built
}

func toZapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
