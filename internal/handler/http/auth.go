package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-hr-portal/internal/app"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
	"github.com/MKhiriev/go-hr-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")
	utils.WriteEnvelope(w, http.StatusCreated, models.AuthData{User: user}, app.MsgRegistrationSuccessful)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, tokens, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.setSessionCookies(w, tokens)
	utils.WriteEnvelope(w, http.StatusOK, models.AuthData{User: user}, app.MsgLoginSuccessful)
}

// logout always clears the cookies, even without a session to end.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if c, err := r.Cookie(refreshTokenCookie); err == nil {
		refreshToken = c.Value
	}

	if err := h.services.AuthService.Logout(r.Context(), refreshToken); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to end session")
	}

	h.clearSessionCookies(w)
	utils.WriteEnvelope(w, http.StatusOK, nil, app.MsgLogoutSuccessful)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(refreshTokenCookie)
	if err != nil || c.Value == "" {
		writeError(w, r, ErrNoRefreshToken)
		return
	}

	user, tokens, err := h.services.AuthService.Refresh(r.Context(), c.Value)
	if err != nil {
		h.clearSessionCookies(w)
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, tokens)
	utils.WriteEnvelope(w, http.StatusOK, models.AuthData{User: user}, app.MsgTokenRefreshed)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAccessToken)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, models.AuthData{User: user}, "")
}
