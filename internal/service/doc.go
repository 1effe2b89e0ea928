// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// Client side (files prefixed client_): [AuthService] keeps the cached user
// record in sync with the cookie session, [AuthGuard] and [GuestGuard]
// decide whether a screen may open, and [EmployeeService] is the employee
// directory consumer of the HTTP wrapper.
//
// Server side: [ServerAuthService], [TokenService] and
// [ServerEmployeeService] implement the development API server on top of
// the in-memory stores.
package service
