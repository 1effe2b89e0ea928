package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// RequestIDHeader carries the id the logging interceptor assigns.
const RequestIDHeader = "X-Request-ID"

// Logging logs method, URL, status and duration of every request when
// enabled. Failures and statuses of 400 and above are logged at error level.
func Logging(enabled bool, log *logger.Logger) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		if !enabled {
			return next
		}

		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
				r = r.Clone(r.Context())
				r.Header.Set(RequestIDHeader, requestID)
			}

			started := time.Now()
			resp, err := next.RoundTrip(r)
			elapsed := time.Since(started)

			if err != nil {
				log.Error().Err(err).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Int("status", 0).
					Dur("duration", elapsed).
					Msg("[HTTP ERROR]")
				return nil, err
			}

			event := log.Info()
			msg := "[HTTP]"
			if resp.StatusCode >= http.StatusBadRequest {
				event = log.Error()
				msg = "[HTTP ERROR]"
			}
			event.
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", resp.StatusCode).
				Dur("duration", elapsed).
				Msg(msg)

			return resp, nil
		})
	}
}
