// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the identity record returned by the auth endpoints and cached
// locally after a successful login. The local copy is advisory: the
// authoritative session lives in the server-issued cookies.
type User struct {
	// ID is the server-assigned user identifier.
	ID int64 `json:"id"`

	// Email is the login e-mail of the user.
	Email string `json:"email"`

	// Username is the display name of the user.
	Username string `json:"username"`
}

// Valid reports whether the record carries the fields a guard needs to
// consider the user signed in.
func (u User) Valid() bool {
	return u.ID != 0 && u.Email != ""
}

// Credentials is the body of POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/auth/register.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthData is the data part of the login, refresh and me envelopes.
type AuthData struct {
	User User `json:"user"`
}

// UserAccount is the server-side user record: the public [User] plus the
// bcrypt hash of the password.
type UserAccount struct {
	User
	PasswordHash []byte `json:"-"`
}

// RefreshSession is an opaque refresh token issued by the development API
// server. A token is single use: refreshing rotates it.
type RefreshSession struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s RefreshSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionTokens are the cookie values the development API server issues on
// login and refresh.
type SessionTokens struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}
