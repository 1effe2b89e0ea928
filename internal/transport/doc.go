// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport holds the interceptor chain every HR API request passes
// through. Interceptors are [http.RoundTripper] decorators composed with
// [Chain]; the client installs the result as the transport of its resty
// client:
//
//	rt := transport.Chain(transport.Cookies(jar, http.DefaultTransport),
//		transport.Logging(enabled, log),
//		transport.Credentials(),
//		transport.Refresh(manager, log),
//	)
//
// Logging is outermost, so it sees the final outcome of a request including
// a replay after refresh. The cookie-aware base transport attaches session
// cookies at send time, so a replayed request carries the refreshed cookies.
package transport
