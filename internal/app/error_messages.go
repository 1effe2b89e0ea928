// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// development API server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of response envelopes. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgRegistrationSuccessful accompanies a newly created account.
	MsgRegistrationSuccessful = "Registration successful"

	// MsgLoginSuccessful accompanies the session cookies set by login.
	MsgLoginSuccessful = "Login successful"

	// MsgLogoutSuccessful is returned by logout, whether or not a session
	// was open.
	MsgLogoutSuccessful = "Logout successful"

	// MsgTokenRefreshed accompanies a rotated pair of session cookies.
	MsgTokenRefreshed = "Token refreshed"

	// MsgInvalidLoginPassword is returned when the supplied e-mail/password
	// combination does not match any account. It does not reveal which of
	// the two was wrong.
	MsgInvalidLoginPassword = "Invalid email or password"

	// MsgInternalServerError replaces the message of any unexpected
	// server-side failure.
	MsgInternalServerError = "Internal server error"

	// MsgRequestTimedOut is the body written when a request exceeds the
	// configured request timeout.
	MsgRequestTimedOut = "Request timed out"

	MsgEmployeeCreated = "Employee created"
	MsgEmployeeUpdated = "Employee updated"
	MsgEmployeeDeleted = "Employee deleted"
	MsgAvatarUploaded  = "Avatar uploaded"
)
