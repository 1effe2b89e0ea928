package client

import "errors"

var (
	ErrUsage = errors.New("usage error")

	// ErrRedirectedToLogin reports that the command ended on the login
	// screen: the session expired or the command needs a signed-in user.
	ErrRedirectedToLogin = errors.New("redirected to login")
)

// ExitCode maps the result of [App.Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrRedirectedToLogin):
		return 2
	case errors.Is(err, ErrUsage):
		return 64
	default:
		return 1
	}
}
