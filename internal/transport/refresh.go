package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/session"
)

// Endpoint fragments that get special treatment on a 401.
const (
	refreshPath  = "/auth/refresh"
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

// SessionRefresher is the part of [session.Manager] the refresh interceptor
// needs.
type SessionRefresher interface {
	Generation() uint64
	RefreshSince(ctx context.Context, seen uint64) error
	Expire(ctx context.Context, returnTo string)
}

// Refresh recovers from 401 responses. A 401 on any endpoint other than
// refresh, login and register waits for a single shared session refresh and
// replays the request once; if the refresh fails the original 401 is
// returned. A 401 on the refresh endpoint expires the session instead of
// refreshing again, and login/register failures pass through unchanged.
// 403, network failures and 5xx are only logged.
func Refresh(sm SessionRefresher, log *logger.Logger) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			r, err := rewindable(r)
			if err != nil {
				return nil, err
			}

			seen := sm.Generation()
			resp, err := next.RoundTrip(r)
			if err != nil {
				log.Warn().Err(err).Str("url", r.URL.String()).Msg("network error - please check your connection")
				return nil, err
			}

			switch {
			case resp.StatusCode == http.StatusUnauthorized:
				return handleUnauthorized(sm, log, next, r, resp, seen)
			case resp.StatusCode == http.StatusForbidden:
				log.Warn().Str("url", r.URL.String()).Msg("access denied - you do not have permission to access this resource")
			case resp.StatusCode >= http.StatusInternalServerError:
				log.Error().Int("status", resp.StatusCode).Str("url", r.URL.String()).Msg("server error - please try again later")
			}

			return resp, nil
		})
	}
}

func handleUnauthorized(sm SessionRefresher, log *logger.Logger, next http.RoundTripper,
	r *http.Request, resp *http.Response, seen uint64) (*http.Response, error) {
	path := r.URL.Path
	ctx := r.Context()
	if _, ok := session.ReturnTo(ctx); !ok {
		ctx = session.WithReturnTo(ctx, r.URL.RequestURI())
	}

	switch {
	case strings.Contains(path, refreshPath):
		returnTo, _ := session.ReturnTo(ctx)
		sm.Expire(context.WithoutCancel(ctx), returnTo)
		return resp, nil
	case strings.Contains(path, loginPath), strings.Contains(path, registerPath):
		return resp, nil
	}

	// the 401 may still be handed back to the caller after the wait
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read unauthorized response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err = sm.RefreshSince(ctx, seen); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		log.Debug().Err(err).Str("url", r.URL.String()).Msg("refresh did not recover the request")
		return resp, nil
	}

	replay := r.Clone(r.Context())
	if r.GetBody != nil {
		if replay.Body, err = r.GetBody(); err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
	}

	return next.RoundTrip(replay)
}

// rewindable makes sure the body of r can be obtained again for a replay.
func rewindable(r *http.Request) (*http.Request, error) {
	if r.Body == nil || r.Body == http.NoBody || r.GetBody != nil {
		return r, nil
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}

	out := r.Clone(r.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}

	return out, nil
}
