// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single point through which every REST call to the
// HR API flows.
//
// [Client] builds the request URL from the configured base address, encodes
// query parameters, bounds each attempt with the request timeout, retries
// reads on transient failures and validates the response envelope. Every
// failure is returned as an [*APIError] carrying a user-facing message, so
// callers can print err.Error() and still match the cause with [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrTimeout] for an attempt that ran out of
// time).
//
// The interceptor chain of package transport is installed as the round
// tripper of the underlying resty client; the adapter itself knows nothing
// about cookies or session refresh.
package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hr-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/http_client_mock.go -package=mock

// Envelope is a decoded response wrapper that reports success and carries a
// server message. [models.Envelope] and [models.Paginated] implement it.
type Envelope interface {
	OK() bool
	ErrorMessage() string
}

// HTTPClient defines the REST operations the service layer relies on.
// Reads (Get, GetWithEnvelope, GetPaginated, GetCached) are retried on
// transient failures; writes are sent exactly once.
type HTTPClient interface {
	// Get sends GET endpoint and decodes the body into out.
	Get(ctx context.Context, endpoint string, out any, opts ...Option) error

	// GetWithEnvelope is Get followed by envelope validation: a response with
	// success=false fails with an [*EnvelopeError].
	GetWithEnvelope(ctx context.Context, endpoint string, out Envelope, opts ...Option) error

	// GetPaginated is GetWithEnvelope with params merged into the query
	// parameters given by options.
	GetPaginated(ctx context.Context, endpoint string, params models.QueryParams, out Envelope, opts ...Option) error

	// GetCached serves repeated reads of the same endpoint and query from a
	// TTL cache. Concurrent callers share one request. It returns the cached
	// response so callers can tell a replay from a fresh fetch.
	GetCached(ctx context.Context, endpoint string, out any, opts ...Option) (*resty.Response, error)

	Post(ctx context.Context, endpoint string, body, out any, opts ...Option) error
	PostWithEnvelope(ctx context.Context, endpoint string, body any, out Envelope, opts ...Option) error
	Put(ctx context.Context, endpoint string, body, out any, opts ...Option) error
	PutWithEnvelope(ctx context.Context, endpoint string, body any, out Envelope, opts ...Option) error
	Patch(ctx context.Context, endpoint string, body, out any, opts ...Option) error
	Delete(ctx context.Context, endpoint string, out any, opts ...Option) error
	DeleteWithEnvelope(ctx context.Context, endpoint string, out Envelope, opts ...Option) error

	// Upload sends files as multipart/form-data with twice the request
	// timeout.
	Upload(ctx context.Context, endpoint string, files []UploadFile, out any, opts ...Option) error

	// Download fetches raw bytes with twice the request timeout. When
	// filename is not empty the bytes are also written to the download
	// directory under that name.
	Download(ctx context.Context, endpoint, filename string, opts ...Option) (Downloaded, error)

	// ClearCache drops every cached response.
	ClearCache()
}
