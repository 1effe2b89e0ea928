package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type recordingNavigator struct {
	mu        sync.Mutex
	redirects []string
}

func (n *recordingNavigator) RedirectToLogin(_ context.Context, returnTo string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirects = append(n.redirects, returnTo)
}

func (n *recordingNavigator) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.redirects...)
}

func newTestManager(timeout time.Duration) (*Manager, *recordingNavigator) {
	nav := &recordingNavigator{}
	return NewManager(config.ClientSession{RefreshTimeout: timeout}, nav, logger.Nop()), nav
}

// ── RefreshSince ──────────────────────────────────────────────────────────────

// TestRefreshSince_ConcurrentCallersShareOneRefresh verifies that requests
// failing at the same generation trigger exactly one refresh call.
func TestRefreshSince_ConcurrentCallersShareOneRefresh(t *testing.T) {
	m, _ := newTestManager(time.Second)

	var calls atomic.Int32
	release := make(chan struct{})
	m.SetRefresher(func(ctx context.Context) error {
		calls.Add(1)
		<-release
		return nil
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.RefreshSince(context.Background(), 0)
		}()
	}

	require.Eventually(t, m.Refreshing, time.Second, time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, uint64(1), m.Generation())
	assert.False(t, m.Refreshing())
}

// TestRefreshSince_SkipsWhenGenerationAdvanced verifies that a request sent
// before a completed refresh replays without another refresh.
func TestRefreshSince_SkipsWhenGenerationAdvanced(t *testing.T) {
	m, _ := newTestManager(time.Second)

	var calls atomic.Int32
	m.SetRefresher(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, m.EnsureValidSession(context.Background()))
	require.Equal(t, uint64(1), m.Generation())

	require.NoError(t, m.RefreshSince(context.Background(), 0))
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, m.RefreshSince(context.Background(), 1))
	assert.Equal(t, int32(2), calls.Load())
}

func TestRefreshSince_FailureTearsDownOnce(t *testing.T) {
	m, nav := newTestManager(time.Second)

	var hookCalls atomic.Int32
	m.OnExpired(func(ctx context.Context) { hookCalls.Add(1) })
	m.SetRefresher(func(ctx context.Context) error { return errors.New("401 Unauthorized") })

	ctx := WithReturnTo(context.Background(), "/employees/5")
	err := m.RefreshSince(ctx, 0)
	require.ErrorIs(t, err, ErrRefreshFailed)

	err = m.RefreshSince(ctx, 0)
	require.ErrorIs(t, err, ErrRefreshFailed)

	assert.True(t, m.Expired())
	assert.Equal(t, int32(1), hookCalls.Load())
	assert.Equal(t, []string{"/employees/5"}, nav.calls())
	assert.Equal(t, uint64(0), m.Generation())
}

// TestRefreshSince_TimeoutKeepsSession verifies that a hung refresh yields
// ErrRefreshTimeout without tearing the session down.
func TestRefreshSince_TimeoutKeepsSession(t *testing.T) {
	m, nav := newTestManager(30 * time.Millisecond)

	m.SetRefresher(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := m.RefreshSince(context.Background(), 0)
	require.ErrorIs(t, err, ErrRefreshTimeout)
	assert.False(t, m.Expired())
	assert.Empty(t, nav.calls())
}

// TestRefreshSince_CallerCancelDoesNotAbortRefresh verifies that a waiter
// giving up leaves the shared refresh running.
func TestRefreshSince_CallerCancelDoesNotAbortRefresh(t *testing.T) {
	m, _ := newTestManager(time.Second)

	release := make(chan struct{})
	m.SetRefresher(func(ctx context.Context) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.RefreshSince(ctx, 0) }()

	require.Eventually(t, m.Refreshing, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	require.Eventually(t, func() bool { return m.Generation() == 1 }, time.Second, time.Millisecond)
}

func TestRefreshSince_NoRefresher(t *testing.T) {
	m, _ := newTestManager(time.Second)
	assert.ErrorIs(t, m.EnsureValidSession(context.Background()), ErrNoRefresher)
}

// ── Expire / Establish ────────────────────────────────────────────────────────

func TestExpire_IdempotentUntilEstablished(t *testing.T) {
	m, nav := newTestManager(time.Second)

	var order []string
	m.OnExpired(func(ctx context.Context) { order = append(order, "first") })
	m.OnExpired(func(ctx context.Context) { order = append(order, "second") })

	m.Expire(context.Background(), "/a")
	m.Expire(context.Background(), "/b")
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []string{"/a"}, nav.calls())

	m.Establish()
	assert.False(t, m.Expired())

	m.Expire(context.Background(), "/c")
	assert.Equal(t, []string{"/a", "/c"}, nav.calls())
}

func TestExpire_NilNavigator(t *testing.T) {
	m := NewManager(config.ClientSession{RefreshTimeout: time.Second}, nil, logger.Nop())
	assert.NotPanics(t, func() { m.Expire(context.Background(), "/") })
	assert.True(t, m.Expired())
}

func TestReturnTo(t *testing.T) {
	_, ok := ReturnTo(context.Background())
	assert.False(t, ok)

	_, ok = ReturnTo(WithReturnTo(context.Background(), ""))
	assert.False(t, ok)

	got, ok := ReturnTo(WithReturnTo(context.Background(), "employees get 5"))
	assert.True(t, ok)
	assert.Equal(t, "employees get 5", got)
}
