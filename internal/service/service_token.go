package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
)

// tokenService signs HS256 access tokens carrying the user id as subject.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
	logger   *logger.Logger
}

func NewTokenService(cfg config.ServerAuth, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.AccessTokenDuration,
		logger:   logger,
	}
}

func (t *tokenService) IssueAccessToken(ctx context.Context, userID int64) (utils.AccessToken, error) {
	token, err := utils.GenerateJWTToken(t.issuer, userID, t.duration, t.signKey)
	if err != nil {
		return utils.AccessToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (t *tokenService) ParseAccessToken(ctx context.Context, tokenString string) (utils.AccessToken, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return utils.AccessToken{}, ErrTokenIsExpired
		}
		return utils.AccessToken{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
