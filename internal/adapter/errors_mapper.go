package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hr-portal/models"
)

const (
	msgTimeout        = "Request timeout. Please try again."
	msgBadRequest     = "Bad Request: Please check your input."
	msgUnauthorized   = "Unauthorized: Please login again."
	msgForbidden      = "Forbidden: You do not have permission to access this resource."
	msgNotFound       = "Not Found: The requested resource does not exist."
	msgInternal       = "Internal Server Error: Please try again later."
	msgUnavailable    = "Service Unavailable: The server is temporarily unavailable."
	msgUnknownFailure = "Unknown error occurred"
)

// mapHTTPError converts a non-2xx response into an [*APIError]. A message
// supplied by the server takes precedence over the canned text.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		Status:     code,
		StatusText: statusText(resp),
		Body:       resp.Body(),
		kind:       statusSentinel(code),
	}

	if msg := serverMessage(resp.Body()); msg != "" {
		apiErr.Message = msg
		return apiErr
	}

	switch code {
	case http.StatusBadRequest:
		apiErr.Message = msgBadRequest
	case http.StatusUnauthorized:
		apiErr.Message = msgUnauthorized
	case http.StatusForbidden:
		apiErr.Message = msgForbidden
	case http.StatusNotFound:
		apiErr.Message = msgNotFound
	case http.StatusInternalServerError:
		apiErr.Message = msgInternal
	case http.StatusServiceUnavailable:
		apiErr.Message = msgUnavailable
	default:
		text := apiErr.StatusText
		if text == "" {
			text = msgUnknownFailure
		}
		apiErr.Message = "Server Error: " + text
	}

	return apiErr
}

// mapTransportError converts a failure that produced no response.
func mapTransportError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if isTimeout(err) {
		return &APIError{Message: msgTimeout, Err: err, kind: ErrTimeout}
	}

	return &APIError{Message: "Client Error: " + err.Error(), Err: err, kind: ErrNetwork}
}

func mapDecodeError(resp *resty.Response, err error) *APIError {
	return &APIError{
		Message:    "Client Error: " + err.Error(),
		Status:     resp.StatusCode(),
		StatusText: statusText(resp),
		Err:        err,
		Body:       resp.Body(),
		kind:       ErrDecode,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// retryable reports whether a read may be attempted again after err.
func retryable(err *APIError) bool {
	switch {
	case err.Status == 0:
		return errors.Is(err, ErrNetwork) && !errors.Is(err, context.Canceled)
	case err.Status == http.StatusRequestTimeout, err.Status == http.StatusTooManyRequests:
		return true
	default:
		return err.Status >= http.StatusInternalServerError
	}
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}
	return nil
}

// statusText returns the reason phrase of the response, e.g. "Not Found".
func statusText(resp *resty.Response) string {
	status := strings.TrimSpace(resp.Status())
	if text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(resp.StatusCode()))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

func serverMessage(body []byte) string {
	var eb models.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Text()
}
