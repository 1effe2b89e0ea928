package client

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Navigator is the terminal rendition of screen navigation. Redirects are
// reported on out and remembered so the app can pick the exit code.
type Navigator struct {
	out io.Writer

	mu         sync.Mutex
	toLogin    bool
	returnTo   string
	toDashboard bool
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) RedirectToLogin(ctx context.Context, returnTo string) {
	n.mu.Lock()
	n.toLogin = true
	n.returnTo = returnTo
	n.mu.Unlock()

	if returnTo == "" {
		fmt.Fprintln(n.out, "redirect to login")
		return
	}
	fmt.Fprintf(n.out, "redirect to login: sign in with `hr-client login` and retry `hr-client %s`\n", returnTo)
}

func (n *Navigator) RedirectToDashboard(ctx context.Context) {
	n.mu.Lock()
	n.toDashboard = true
	n.mu.Unlock()

	fmt.Fprintln(n.out, "already signed in")
}

// RedirectedToLogin reports the last login redirect and its return target.
func (n *Navigator) RedirectedToLogin() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.returnTo, n.toLogin
}

func (n *Navigator) RedirectedToDashboard() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.toDashboard
}

// Reset forgets earlier redirects.
func (n *Navigator) Reset() {
	n.mu.Lock()
	n.toLogin, n.returnTo, n.toDashboard = false, "", false
	n.mu.Unlock()
}
