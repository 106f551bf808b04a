package background

import (
	"context"
	"log/slog"
	"time"
)

// RetentionStore is the subset of the record store the retention task needs
type RetentionStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionManager periodically prunes captured attempts older than the
// configured retention window. A zero retention keeps the log forever, which
// is the default: the attempt log is the audit trail.
type RetentionManager struct {
	store     RetentionStore
	logger    *slog.Logger
	retention time.Duration
	interval  time.Duration
	stopCh    chan struct{}
}

// NewRetentionManager creates a new retention manager
func NewRetentionManager(store RetentionStore, logger *slog.Logger, retention, interval time.Duration) *RetentionManager {
	return &RetentionManager{
		store:     store,
		logger:    logger,
		retention: retention,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic pruning task. Returns immediately when retention
// is disabled.
func (rm *RetentionManager) Start(ctx context.Context) {
	if rm.retention <= 0 {
		rm.logger.Info("attempt retention disabled, keeping all records")
		return
	}

	ticker := time.NewTicker(rm.interval)
	defer ticker.Stop()

	rm.runPrune(ctx)

	for {
		select {
		case <-ticker.C:
			rm.runPrune(ctx)
		case <-rm.stopCh:
			rm.logger.Info("retention manager stopped")
			return
		case <-ctx.Done():
			rm.logger.Info("retention manager context cancelled")
			return
		}
	}
}

// runPrune removes attempts older than the retention window
func (rm *RetentionManager) runPrune(ctx context.Context) {
	pruneCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-rm.retention)
	deleted, err := rm.store.DeleteOlderThan(pruneCtx, cutoff)
	if err != nil {
		rm.logger.Error("failed to prune expired attempts", slog.Any("error", err))
		return
	}

	if deleted > 0 {
		rm.logger.Info("expired attempts pruned", slog.Int64("rows_deleted", deleted))
	}
}

// Stop signals the retention manager to stop
func (rm *RetentionManager) Stop() {
	close(rm.stopCh)
}
