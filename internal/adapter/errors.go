package adapter

import (
	"errors"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrTimeout             = errors.New("request timeout")
	ErrNetwork             = errors.New("network error")
	ErrDecode              = errors.New("decode response")
	ErrUnsupportedTarget   = errors.New("unsupported response target")
	ErrInvalidBaseURL      = errors.New("invalid base url")
)

// defaultEnvelopeMessage is used when a failed envelope carries no message.
const defaultEnvelopeMessage = "API request failed"

// APIError is the normalized failure of a request. Message is safe to show
// to the user; Status is 0 when no HTTP response was received.
type APIError struct {
	Message    string
	Status     int
	StatusText string
	// Err is the underlying cause, if any.
	Err error
	// Body is the raw response body of an HTTP failure.
	Body []byte

	kind error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that classifies the failure.
func (e *APIError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// EnvelopeError is returned when a response arrived with success=false.
type EnvelopeError struct {
	Message string
	Status  int
}

func (e *EnvelopeError) Error() string {
	return e.Message
}

func newEnvelopeError(env Envelope, status int) *EnvelopeError {
	msg := env.ErrorMessage()
	if msg == "" {
		msg = defaultEnvelopeMessage
	}
	return &EnvelopeError{Message: msg, Status: status}
}
