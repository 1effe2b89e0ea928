package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
	"github.com/MKhiriev/go-hr-portal/models"
)

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       models.Registration{Email: "new@hr-portal.local", Username: "new", Password: "secret1"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "email taken",
			body:       service.DemoAccount,
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_TAKEN",
		},
		{
			name:       "short password",
			body:       models.Registration{Email: "x@hr-portal.local", Username: "x", Password: "123"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "broken json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestHandler(t)

			rec := doJSON(t, router, http.MethodPost, "/api/auth/register", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
				return
			}
			env := decodeEnvelope[models.AuthData](t, rec)
			assert.Equal(t, "new@hr-portal.local", env.Data.User.Email)
			assert.NotZero(t, env.Data.User.ID)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_SetsSessionCookies(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", models.Credentials{
		Email:    service.DemoAccount.Email,
		Password: service.DemoAccount.Password,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[models.AuthData](t, rec)
	assert.Equal(t, service.DemoAccount.Username, env.Data.User.Username)
	assert.Equal(t, "Login successful", env.Message)

	cookies := rec.Result().Cookies()
	access := cookieByName(cookies, accessTokenCookie)
	refresh := cookieByName(cookies, refreshTokenCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, "/", refresh.Path)
	assert.Equal(t, http.SameSiteLaxMode, refresh.SameSite)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", models.Credentials{
		Email:    service.DemoAccount.Email,
		Password: "not-the-password",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, "Invalid email or password", body.Message)
	assert.Nil(t, cookieByName(rec.Result().Cookies(), accessTokenCookie))
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_WithCookie(t *testing.T) {
	_, router := newTestHandler(t)
	cookies := loginDemo(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, cookies...)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.DemoAccount.Email, decodeEnvelope[models.AuthData](t, rec).Data.User.Email)
}

func TestMe_WithBearerHeader(t *testing.T) {
	_, router := newTestHandler(t)
	access := cookieByName(loginDemo(t, router), accessTokenCookie)
	require.NotNil(t, access)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access.Value)
	rec := serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_ExpiredTokenIsFlagged(t *testing.T) {
	_, router := newTestHandler(t)
	cfg := testAuthConfig()

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, -time.Second, cfg.TokenSignKey)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: accessTokenCookie, Value: expired.SignedString})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", decodeError(t, rec).Error.Code)
}

func TestMe_ForgedToken(t *testing.T) {
	_, router := newTestHandler(t)
	cfg := testAuthConfig()

	forged, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, time.Minute, "another-key")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: accessTokenCookie, Value: forged.SignedString})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec).Error.Code)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_RotatesRefreshToken(t *testing.T) {
	_, router := newTestHandler(t)
	oldRefresh := cookieByName(loginDemo(t, router), refreshTokenCookie)
	require.NotNil(t, oldRefresh)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil, oldRefresh)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	newRefresh := cookieByName(rec.Result().Cookies(), refreshTokenCookie)
	require.NotNil(t, newRefresh)
	assert.NotEqual(t, oldRefresh.Value, newRefresh.Value)
	assert.NotNil(t, cookieByName(rec.Result().Cookies(), accessTokenCookie))

	// the old token has been consumed
	rec = doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil, oldRefresh)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", decodeError(t, rec).Error.Code)

	cleared := cookieByName(rec.Result().Cookies(), refreshTokenCookie)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestRefresh_MissingCookie(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REFRESH_TOKEN_MISSING", decodeError(t, rec).Error.Code)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_EndsSession(t *testing.T) {
	_, router := newTestHandler(t)
	cookies := loginDemo(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c := cookieByName(rec.Result().Cookies(), name)
		require.NotNil(t, c, name)
		assert.Negative(t, c.MaxAge, name)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/refresh", nil, cookieByName(cookies, refreshTokenCookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
