// Package http implements the development API server that stands in for the
// HR backend.
//
// It exposes the /api/auth endpoints with cookie sessions (a short-lived
// access_token JWT and a rotating refresh_token) and the /employees
// directory. Every JSON response uses the { success, data, message } envelope
// the client expects; failures also carry { error: { code, message } }.
// Request tracing and access logging are handled here before requests are
// delegated to the service layer.
package http
