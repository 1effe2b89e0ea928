// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the wrapper every JSON response of the HR API uses:
//
//	{ "success": true, "data": ..., "message": "..." }
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// OK reports whether the server flagged the response as successful.
func (e Envelope[T]) OK() bool { return e.Success }

// ErrorMessage returns the server-supplied message.
func (e Envelope[T]) ErrorMessage() string { return e.Message }

// Pagination describes the page a paginated response carries.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginated is the envelope used by list endpoints.
type Paginated[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

// OK reports whether the server flagged the response as successful.
func (p Paginated[T]) OK() bool { return p.Success }

// ErrorMessage returns the server-supplied message.
func (p Paginated[T]) ErrorMessage() string { return p.Message }

// ErrorBody is the failure shape some endpoints use instead of a plain
// message: { "success": false, "error": { "code": "...", "message": "..." } }.
type ErrorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Path    string       `json:"path,omitempty"`
}

// ErrorDetail is the "error" object of an [ErrorBody].
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Text returns the most specific message the body carries.
func (b ErrorBody) Text() string {
	if b.Message != "" {
		return b.Message
	}
	if b.Error != nil {
		return b.Error.Message
	}
	return ""
}

// QueryParams are the query parameters of a request. Nil values are skipped,
// slices become repeated keys and every other value is stringified.
type QueryParams map[string]any
