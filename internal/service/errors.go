package service

import "errors"

// Client-side errors.
var (
	ErrLoginFailed      = errors.New("login failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrEmptyEmployeeID  = errors.New("employee id is required")
)

// Development API server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRefreshTokenInvalid     = errors.New("refresh token is invalid or expired")
)
