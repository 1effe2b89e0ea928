package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hr-portal/internal/app"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

type errorStatus struct {
	status int
	code   string
}

// errorStatusList is ordered: the first matching target wins.
var errorStatusList = []struct {
	target error
	errorStatus
}{
	{ErrInvalidJSON, errorStatus{http.StatusBadRequest, "INVALID_JSON"}},
	{ErrInvalidQuery, errorStatus{http.StatusBadRequest, "INVALID_QUERY"}},
	{ErrNoAvatarFile, errorStatus{http.StatusBadRequest, "VALIDATION_ERROR"}},
	{service.ErrInvalidDataProvided, errorStatus{http.StatusBadRequest, "VALIDATION_ERROR"}},

	{ErrNoAccessToken, errorStatus{http.StatusUnauthorized, "UNAUTHORIZED"}},
	{ErrInvalidAuthorizationHeader, errorStatus{http.StatusUnauthorized, "UNAUTHORIZED"}},
	{ErrEmptyToken, errorStatus{http.StatusUnauthorized, "UNAUTHORIZED"}},
	{ErrNoRefreshToken, errorStatus{http.StatusUnauthorized, "REFRESH_TOKEN_MISSING"}},
	{service.ErrWrongPassword, errorStatus{http.StatusUnauthorized, "INVALID_CREDENTIALS"}},
	{service.ErrTokenIsExpired, errorStatus{http.StatusUnauthorized, "TOKEN_EXPIRED"}},
	{service.ErrTokenIsExpiredOrInvalid, errorStatus{http.StatusUnauthorized, "TOKEN_INVALID"}},
	{service.ErrRefreshTokenInvalid, errorStatus{http.StatusUnauthorized, "REFRESH_TOKEN_INVALID"}},

	{store.ErrNoUserWasFound, errorStatus{http.StatusNotFound, "USER_NOT_FOUND"}},
	{store.ErrEmployeeNotFound, errorStatus{http.StatusNotFound, "EMPLOYEE_NOT_FOUND"}},
	{store.ErrAvatarNotFound, errorStatus{http.StatusNotFound, "AVATAR_NOT_FOUND"}},

	{store.ErrEmailAlreadyExists, errorStatus{http.StatusConflict, "EMAIL_TAKEN"}},
	{store.ErrEmployeeEmailTaken, errorStatus{http.StatusConflict, "EMAIL_TAKEN"}},
}

func statusFromError(err error) errorStatus {
	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.errorStatus
		}
	}
	return errorStatus{http.StatusInternalServerError, "INTERNAL_ERROR"}
}

// writeError logs err and writes the failure envelope. Internal errors are
// not exposed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	s := statusFromError(err)

	message := err.Error()
	if s.status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", s.status).Msg("request rejected")
	}
	if errors.Is(err, service.ErrWrongPassword) {
		message = app.MsgInvalidLoginPassword
	}

	utils.WriteError(w, r, s.status, s.code, message)
}
