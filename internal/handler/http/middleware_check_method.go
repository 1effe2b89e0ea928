// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

// notFound answers unknown paths with the failure envelope instead of chi's
// plain-text 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, r, http.StatusNotFound, "NOT_FOUND", "Route "+r.Method+" "+r.URL.Path+" not found")
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]: the path
// exists but not for this method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method "+r.Method+" is not allowed on "+r.URL.Path)
}
