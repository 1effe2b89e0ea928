package session

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Navigator moves the user to the login screen once the session cannot be
// recovered. returnTo is the location the user was trying to reach.
type Navigator interface {
	RedirectToLogin(ctx context.Context, returnTo string)
}

// Refresher asks the server for a new pair of session cookies.
type Refresher func(ctx context.Context) error

// ExpiredHook runs once when the session is torn down.
type ExpiredHook func(ctx context.Context)
