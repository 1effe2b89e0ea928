// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request parsing layer. Callers can match against
// them with [errors.Is].
var (
	// ErrNoAccessToken is returned by the auth middleware when neither the
	// access_token cookie nor an "Authorization" header is present.
	ErrNoAccessToken = errors.New("no access token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// scheme but an empty token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoRefreshToken is returned by the refresh endpoint when the
	// refresh_token cookie is missing.
	ErrNoRefreshToken = errors.New("no refresh token provided")

	ErrInvalidJSON  = errors.New("invalid JSON was passed")
	ErrInvalidQuery = errors.New("invalid query parameter")
	ErrNoAvatarFile = errors.New("multipart field `avatar` is required")
)
