package host

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the host's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger overrides the host's logger. Call before the first operation
// that logs; later calls are ignored once the default has been latched.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
