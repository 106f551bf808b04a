package background_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/credsink/credsink/internal/background"
	"github.com/stretchr/testify/assert"
)

type mockRetentionStore struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (m *mockRetentionStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoffs = append(m.cutoffs, cutoff)
	return 1, nil
}

func (m *mockRetentionStore) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cutoffs)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func TestRetentionManager_DisabledDoesNothing(t *testing.T) {
	store := &mockRetentionStore{}
	rm := background.NewRetentionManager(store, testLogger(), 0, time.Millisecond)

	done := make(chan struct{})
	go func() {
		rm.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start should return immediately when retention is disabled")
	}

	assert.Zero(t, store.calls(), "no pruning when retention is disabled")
}

func TestRetentionManager_PrunesWithCutoff(t *testing.T) {
	store := &mockRetentionStore{}
	retention := 24 * time.Hour
	rm := background.NewRetentionManager(store, testLogger(), retention, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go rm.Start(ctx)

	// The first prune runs immediately on start.
	assert.Eventually(t, func() bool { return store.calls() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	store.mu.Lock()
	cutoff := store.cutoffs[0]
	store.mu.Unlock()

	expected := time.Now().Add(-retention)
	assert.WithinDuration(t, expected, cutoff, 5*time.Second)
}

func TestRetentionManager_StopsOnContextCancel(t *testing.T) {
	store := &mockRetentionStore{}
	rm := background.NewRetentionManager(store, testLogger(), time.Hour, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rm.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.calls() >= 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start should return after context cancellation")
	}
}
