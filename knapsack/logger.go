package knapsack

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerMu   sync.RWMutex
	loggerOnce sync.Once
)

// Logger returns the knapsack package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return logger
}

// SetLogger configures the knapsack package's logger.
// A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// logResult emits the per-call debug record shared by all solvers.
func logResult(algo Algorithm, n int, capacity int64, res Result) {
	Logger().Debug("knapsack solved",
		zap.Stringer("algo", algo),
		zap.Int("items", n),
		zap.Int64("capacity", capacity),
		zap.Int64("value", res.Value),
		zap.Bool("optimal", res.Optimal),
		zap.Int("nodes", res.Stats.Nodes),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Int("cells", res.Stats.Cells),
	)
}
