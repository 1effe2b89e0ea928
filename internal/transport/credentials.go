package transport

import (
	"context"
	"net/http"
)

type credentialsKey struct{}

// WithCredentials marks ctx so that requests made with it carry the session
// cookies.
func WithCredentials(ctx context.Context) context.Context {
	return context.WithValue(ctx, credentialsKey{}, true)
}

// HasCredentials reports whether ctx was marked by [WithCredentials].
func HasCredentials(ctx context.Context) bool {
	v, _ := ctx.Value(credentialsKey{}).(bool)
	return v
}

// Credentials marks every request as credentialed, whatever the caller
// asked for.
func Credentials() Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			if !HasCredentials(r.Context()) {
				r = r.WithContext(WithCredentials(r.Context()))
			}
			return next.RoundTrip(r)
		})
	}
}
