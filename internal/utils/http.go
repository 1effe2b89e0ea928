package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-hr-portal/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEnvelope writes a successful { success, data, message, timestamp }
// response.
func WriteEnvelope(w http.ResponseWriter, statusCode int, data any, message string) (int, error) {
	return WriteJSON(w, models.Envelope[any]{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, statusCode)
}

// WritePaginated writes a successful list response with its pagination.
func WritePaginated[T any](w http.ResponseWriter, data []T, pagination models.Pagination) (int, error) {
	if data == nil {
		data = []T{}
	}
	return WriteJSON(w, models.Paginated[T]{Success: true, Data: data, Pagination: pagination}, http.StatusOK)
}

// WriteError writes a failed response carrying message both at the top
// level and under "error", the two shapes HR API clients read.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) (int, error) {
	body := models.ErrorBody{
		Success: false,
		Message: message,
		Error:   &models.ErrorDetail{Code: code, Message: message},
	}
	if r != nil {
		body.Path = r.URL.Path
	}

	return WriteJSON(w, body, statusCode)
}
