package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w, ctx: r.Context()}
		next.ServeHTTP(lw, r)

		entry := log.Info()
		if lw.status >= http.StatusInternalServerError {
			entry = log.Error()
		}
		if userID, ok := utils.GetUserIDFromContext(lw.ctx); ok {
			entry = entry.Int64("user_id", userID)
		}

		entry.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
