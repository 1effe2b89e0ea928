// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned when the dev API has no router to serve.
var errNoHTTPHandler = errors.New("dev api server: no http handler configured")
