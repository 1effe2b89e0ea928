package session

import "context"

type returnToKey struct{}

// WithReturnTo records the location to come back to after a forced login.
func WithReturnTo(ctx context.Context, returnTo string) context.Context {
	return context.WithValue(ctx, returnToKey{}, returnTo)
}

// ReturnTo returns the location stored by [WithReturnTo], if any.
func ReturnTo(ctx context.Context) (string, bool) {
	returnTo, ok := ctx.Value(returnToKey{}).(string)
	return returnTo, ok && returnTo != ""
}
