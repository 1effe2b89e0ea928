package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-hr-portal/internal/adapter"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/session"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/models"
)

const (
	loginEndpoint   = "api/auth/login"
	logoutEndpoint  = "api/auth/logout"
	refreshEndpoint = "api/auth/refresh"
	meEndpoint      = "api/auth/me"
)

type clientAuthService struct {
	client    adapter.HTTPClient
	users     store.UserStateRepository
	cookies   CookieCleaner
	sessions  *session.Manager
	navigator session.Navigator

	mu   sync.RWMutex
	user *models.User

	logger *logger.Logger
}

// NewClientAuthService constructs the client [AuthService] and binds it to
// sessions: the refresh call is registered as the session refresher and
// local data is cleared whenever the session expires. cookies and navigator
// may be nil.
func NewClientAuthService(client adapter.HTTPClient, users store.UserStateRepository, cookies CookieCleaner,
	sessions *session.Manager, navigator session.Navigator, logger *logger.Logger) AuthService {
	a := &clientAuthService{
		client:    client,
		users:     users,
		cookies:   cookies,
		sessions:  sessions,
		navigator: navigator,
		logger:    logger,
	}

	sessions.SetRefresher(a.refresh)
	sessions.OnExpired(a.clearAuthData)

	return a
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var resp models.Envelope[models.AuthData]
	if err := a.client.PostWithEnvelope(ctx, loginEndpoint, credentials, &resp, adapter.WithCredentials()); err != nil {
		a.logger.Err(err).Str("email", credentials.Email).Msg("login error")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	a.setAuthData(ctx, resp.Data.User)
	a.sessions.Establish()

	a.logger.Info().Int64("user_id", resp.Data.User.ID).Msg("user logged in")
	return resp.Data.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	err := a.client.Post(ctx, logoutEndpoint, struct{}{}, nil, adapter.WithCredentials())

	// local data goes even if the server call failed
	a.clearAuthData(ctx)
	if a.navigator != nil {
		a.navigator.RedirectToLogin(ctx, "")
	}

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *clientAuthService) RefreshTokens(ctx context.Context) error {
	if err := a.sessions.EnsureValidSession(ctx); err != nil {
		if errors.Is(err, session.ErrRefreshFailed) {
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return err
	}
	return nil
}

// refresh is the session refresher. Teardown on failure is left to the
// session manager.
func (a *clientAuthService) refresh(ctx context.Context) error {
	return a.client.Post(ctx, refreshEndpoint, struct{}{}, nil, adapter.WithCredentials())
}

func (a *clientAuthService) GetCurrentUser(ctx context.Context) (models.User, error) {
	var resp models.Envelope[models.AuthData]
	if err := a.client.GetWithEnvelope(ctx, meEndpoint, &resp, adapter.WithCredentials()); err != nil {
		a.clearAuthData(ctx)
		return models.User{}, fmt.Errorf("get current user: %w", err)
	}

	a.setAuthData(ctx, resp.Data.User)
	return resp.Data.User, nil
}

func (a *clientAuthService) CheckAuthStatus(ctx context.Context) bool {
	if _, err := a.GetCurrentUser(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("not authenticated")
		return false
	}
	return true
}

func (a *clientAuthService) Restore(ctx context.Context) error {
	user, err := a.users.LoadUser(ctx)
	switch {
	case err == nil:
		a.mu.Lock()
		a.user = &user
		a.mu.Unlock()
		return nil
	case errors.Is(err, store.ErrUserStateNotFound):
		return nil
	case errors.Is(err, store.ErrCorruptUserState):
		a.logger.Warn().Err(err).Msg("error parsing stored user data")
		if err = a.users.DeleteUser(ctx); err != nil {
			return fmt.Errorf("delete corrupt user: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("restore user: %w", err)
	}
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

func (a *clientAuthService) IsAuthenticated() bool {
	user, ok := a.CurrentUser()
	return ok && user.Valid()
}

func (a *clientAuthService) setAuthData(ctx context.Context, user models.User) {
	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()

	if err := a.users.SaveUser(ctx, user); err != nil {
		a.logger.Err(err).Msg("error storing user data")
	}
}

// clearAuthData forgets the user, the session cookies and cached reads.
func (a *clientAuthService) clearAuthData(ctx context.Context) {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.users.DeleteUser(ctx); err != nil {
		a.logger.Err(err).Msg("error deleting stored user data")
	}
	if a.cookies != nil {
		if err := a.cookies.Clear(ctx); err != nil {
			a.logger.Err(err).Msg("error clearing session cookies")
		}
	}
	a.client.ClearCache()
}
