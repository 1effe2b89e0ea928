package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

// auth enforces a valid access token. The token is read from the
// access_token cookie, falling back to an "Authorization: Bearer" header
// for non-browser callers. On success the user id is stored in the request
// context under [utils.UserIDCtxKey].
//
// Rejections are 401 envelopes; an expired token carries the TOKEN_EXPIRED
// code, which is what makes the client refresh.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := accessTokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUserID(ctx, userID)
		rememberContext(w, ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessTokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAccessToken
	}
	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the token of "Authorization: <scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
