package transcoder

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// Logger returns the transcoder's logger instance.
// It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger routes conversion tracing to log. Passing nil restores the
// default no-op logger. Conversions log at debug level only, and only on
// failure paths; the success path stays allocation-free.
func SetLogger(log *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if log == nil {
		log = zap.NewNop()
	}
	logger = log
}

func debugf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
