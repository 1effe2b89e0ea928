package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-hr-portal/internal/transport"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger with a trace id and echoes it back in
// X-Trace-ID. hr-client sends no trace id but stamps every request with
// X-Request-ID, which is reused so both sides log the same id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func requestTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id
	}
	if id := r.Header.Get(transport.RequestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
