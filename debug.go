package touchable

import (
	"fmt"

	"go.uber.org/zap"
)

// nopLogger is the default logger: the core stays silent unless the host
// injects one with SetLogger.
func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// NewDebugLogger builds a development logger at debug level, suitable for
// SetLogger while diagnosing input problems. Every state transition and
// every ignored event is logged.
func NewDebugLogger() (*zap.SugaredLogger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create debug logger: %w", err)
	}
	return l.Sugar(), nil
}
