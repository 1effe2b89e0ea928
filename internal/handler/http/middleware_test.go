package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/transport"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// ── Trace ID ─────────────────────────────────────────────────────────────────

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_KeepsCallerID(t *testing.T) {
	h := bufferedHandler(&bytes.Buffer{})
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReusesClientRequestID(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(transport.RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"req-7"`)

	req.Header.Set(traceIDHeader, "trace-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader), "explicit trace id wins")
}

// ── Logging ──────────────────────────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLevel string
		wantCode  int
		wantSize  int
		wantUser  bool
	}{
		{
			name:      "implicit 200",
			handler:   func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("hello")) },
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  5,
		},
		{
			name:      "server error",
			handler:   func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			wantLevel: "error",
			wantCode:  http.StatusBadGateway,
		},
		{
			name: "authenticated",
			handler: func(w http.ResponseWriter, r *http.Request) {
				rememberContext(w, utils.WithUserID(r.Context(), 42))
				w.WriteHeader(http.StatusNoContent)
			},
			wantLevel: "info",
			wantCode:  http.StatusNoContent,
			wantUser:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)
			handler := h.withTraceID(h.withLogging(tt.handler))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x?y=1", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/x?y=1", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.EqualValues(t, tt.wantCode, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			if tt.wantUser {
				assert.EqualValues(t, 42, entry["user_id"])
			} else {
				assert.NotContains(t, entry, "user_id")
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Same(t, rec, w.Unwrap())
}

// ── Auth header ──────────────────────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessTokenFromRequest_CookieWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	got, err := accessTokenFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "from-cookie", got)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError_Unknown(t *testing.T) {
	s := statusFromError(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, s.status)
	assert.Equal(t, "INTERNAL_ERROR", s.code)
}
