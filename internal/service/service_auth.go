package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
	"github.com/MKhiriev/go-hr-portal/internal/validators"
	"github.com/MKhiriev/go-hr-portal/models"
)

// authService is the concrete implementation of ServerAuthService.
// Passwords are stored as bcrypt hashes; sessions are an access JWT plus an
// opaque single-use refresh token.
type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	tokens   TokenService

	validator validators.Validator
	uuid      *utils.UUIDGenerator

	refreshDuration time.Duration
	now             func() time.Time

	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, sessions store.SessionRepository, tokens TokenService,
	cfg config.ServerAuth, logger *logger.Logger) ServerAuthService {
	return &authService{
		users:           users,
		sessions:        sessions,
		tokens:          tokens,
		validator:       validators.NewEmployeeValidator(),
		uuid:            utils.NewUUIDGenerator(),
		refreshDuration: cfg.RefreshTokenDuration,
		now:             time.Now,
		logger:          logger,
	}
}

// Register creates an account.
//
// Returns ErrInvalidDataProvided wrapping the validation failure, or a
// wrapped store.ErrEmailAlreadyExists.
func (a *authService) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, registration); err != nil {
		log.Debug().Err(err).Str("email", registration.Email).Msg("invalid registration")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := a.users.CreateUser(ctx, models.UserAccount{
		User:         models.User{Email: registration.Email, Username: registration.Username},
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", registration.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return account.User, nil
}

// Login authenticates an existing user and opens a session.
//
// An unknown e-mail and a wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.SessionTokens, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, models.SessionTokens{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.users.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", credentials.Email).Msg("unknown email")
			return models.User{}, models.SessionTokens{}, ErrWrongPassword
		}
		return models.User{}, models.SessionTokens{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(credentials.Password)); err != nil {
		log.Debug().Int64("id", account.ID).Msg("wrong password")
		return models.User{}, models.SessionTokens{}, ErrWrongPassword
	}

	tokens, err := a.openSession(ctx, account.ID)
	if err != nil {
		return models.User{}, models.SessionTokens{}, err
	}

	return account.User, tokens, nil
}

// Refresh rotates the session: the presented refresh token is consumed and a
// new pair issued.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.SessionTokens, error) {
	if refreshToken == "" {
		return models.User{}, models.SessionTokens{}, ErrRefreshTokenInvalid
	}

	session, err := a.sessions.TakeSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, models.SessionTokens{}, ErrRefreshTokenInvalid
		}
		return models.User{}, models.SessionTokens{}, fmt.Errorf("take session: %w", err)
	}
	if session.Expired(a.now()) {
		return models.User{}, models.SessionTokens{}, ErrRefreshTokenInvalid
	}

	account, err := a.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		return models.User{}, models.SessionTokens{}, fmt.Errorf("%w: %w", ErrRefreshTokenInvalid, err)
	}

	tokens, err := a.openSession(ctx, account.ID)
	if err != nil {
		return models.User{}, models.SessionTokens{}, err
	}

	return account.User, tokens, nil
}

func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.sessions.DeleteSession(ctx, refreshToken); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (a *authService) ParseAccessToken(ctx context.Context, token string) (int64, error) {
	parsed, err := a.tokens.ParseAccessToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return parsed.UserID, nil
}

func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	account, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("find user %d: %w", userID, err)
	}
	return account.User, nil
}

func (a *authService) PurgeExpiredSessions(ctx context.Context) (int, error) {
	return a.sessions.DeleteExpired(ctx, a.now())
}

func (a *authService) openSession(ctx context.Context, userID int64) (models.SessionTokens, error) {
	access, err := a.tokens.IssueAccessToken(ctx, userID)
	if err != nil {
		return models.SessionTokens{}, err
	}

	session := models.RefreshSession{
		Token:     a.uuid.Generate(),
		UserID:    userID,
		ExpiresAt: a.now().Add(a.refreshDuration),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.SessionTokens{}, fmt.Errorf("save session: %w", err)
	}

	return models.SessionTokens{
		AccessToken:      access.SignedString,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshToken:     session.Token,
		RefreshExpiresAt: session.ExpiresAt,
	}, nil
}
