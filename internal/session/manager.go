package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

const refreshKey = "refresh"

// Manager coordinates token refresh and session teardown. The zero value is
// not usable; create one with [NewManager].
type Manager struct {
	group      singleflight.Group
	refreshing atomic.Bool
	generation atomic.Uint64
	expired    atomic.Bool

	mu        sync.RWMutex
	refresher Refresher
	hooks     []ExpiredHook

	navigator Navigator
	timeout   time.Duration
	logger    *logger.Logger
}

// NewManager returns a Manager bounding every refresh, and every wait for
// one, by cfg.RefreshTimeout. navigator may be nil.
func NewManager(cfg config.ClientSession, navigator Navigator, logger *logger.Logger) *Manager {
	return &Manager{
		navigator: navigator,
		timeout:   cfg.RefreshTimeout,
		logger:    logger,
	}
}

// SetRefresher binds the function that performs the refresh call.
func (m *Manager) SetRefresher(fn Refresher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresher = fn
}

// OnExpired registers a hook run on teardown. Hooks run in registration
// order.
func (m *Manager) OnExpired(hook ExpiredHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Generation returns the number of successful refreshes so far.
func (m *Manager) Generation() uint64 {
	return m.generation.Load()
}

// Refreshing reports whether a refresh is in flight.
func (m *Manager) Refreshing() bool {
	return m.refreshing.Load()
}

// Expired reports whether the session was torn down and not re-established.
func (m *Manager) Expired() bool {
	return m.expired.Load()
}

// Establish marks the session as live again, re-arming teardown. Called
// after a successful login.
func (m *Manager) Establish() {
	m.expired.Store(false)
}

// EnsureValidSession refreshes the session, joining a refresh that is
// already in flight.
func (m *Manager) EnsureValidSession(ctx context.Context) error {
	return m.RefreshSince(ctx, m.Generation())
}

// RefreshSince refreshes the session unless a refresh that completed after
// generation seen already did so. Callers pass the generation observed
// before sending the request that failed.
//
// The refresh runs detached from ctx, bounded by the refresh timeout, so
// one caller giving up does not fail the others. Each caller waits until
// the shared outcome arrives, its ctx is done, or the timeout elapses.
func (m *Manager) RefreshSince(ctx context.Context, seen uint64) error {
	if m.Generation() > seen {
		return nil
	}

	m.mu.RLock()
	refresher := m.refresher
	m.mu.RUnlock()
	if refresher == nil {
		return ErrNoRefresher
	}

	returnTo, _ := ReturnTo(ctx)
	// A failed refresh leaves the generation unchanged, so a 401 arriving
	// after its call finished starts another refresh. Only the expiry latch
	// in Expire keeps that second failure from tearing down again.
	result := m.group.DoChan(refreshKey, func() (any, error) {
		// another caller may have finished a refresh before this one joined
		if m.Generation() > seen {
			return nil, nil
		}

		m.refreshing.Store(true)
		defer m.refreshing.Store(false)

		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()

		err := refresher(refreshCtx)
		switch {
		case err == nil:
			m.generation.Add(1)
			m.Establish()
			m.logger.Debug().Uint64("generation", m.Generation()).Msg("session refreshed")
			return nil, nil
		case errors.Is(refreshCtx.Err(), context.DeadlineExceeded):
			m.logger.Warn().Err(err).Dur("timeout", m.timeout).Msg("session refresh timed out")
			return nil, ErrRefreshTimeout
		default:
			m.logger.Warn().Err(err).Msg("session refresh failed")
			m.Expire(context.WithoutCancel(ctx), returnTo)
			return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
		}
	})

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrRefreshTimeout
	}
}

// Expire tears the session down: hooks run and the navigator redirects to
// login with returnTo. Only the first call after [Manager.Establish] has an
// effect.
func (m *Manager) Expire(ctx context.Context, returnTo string) {
	if !m.expired.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info().Str("return_to", returnTo).Msg("session expired")

	m.mu.RLock()
	hooks := make([]ExpiredHook, len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx)
	}

	if m.navigator != nil {
		m.navigator.RedirectToLogin(ctx, returnTo)
	}
}
