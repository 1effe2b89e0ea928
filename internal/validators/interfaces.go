// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks employee directory and account input before it
// reaches the dev API stores.
//
// A Validator dispatches on the value type (new employee, partial update,
// list filter, avatar upload, credentials, registration). Passing field names
// limits the check to those fields.
package validators

import "context"

// Validator validates a request value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
