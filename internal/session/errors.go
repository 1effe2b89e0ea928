package session

import "errors"

var (
	// ErrRefreshFailed is returned when the refresh call itself failed and
	// the session was torn down.
	ErrRefreshFailed = errors.New("session refresh failed")

	// ErrRefreshTimeout is returned when no refresh outcome arrived within
	// the configured bound.
	ErrRefreshTimeout = errors.New("session refresh timed out")

	// ErrNoRefresher is returned when a refresh is needed before a
	// refresher has been bound.
	ErrNoRefresher = errors.New("no session refresher configured")
)
