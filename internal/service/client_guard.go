package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/session"
	"github.com/MKhiriev/go-hr-portal/internal/store"
)

// AuthGuard admits a screen only when a valid user record is cached.
// Otherwise it redirects to login with target as the return location.
type AuthGuard struct {
	users     store.UserStateRepository
	navigator session.Navigator
	logger    *logger.Logger
}

func NewAuthGuard(users store.UserStateRepository, navigator session.Navigator, logger *logger.Logger) *AuthGuard {
	return &AuthGuard{users: users, navigator: navigator, logger: logger}
}

func (g *AuthGuard) CanActivate(ctx context.Context, target string) bool {
	if signedIn(ctx, g.users, g.logger) {
		return true
	}

	if g.navigator != nil {
		g.navigator.RedirectToLogin(ctx, target)
	}
	return false
}

// GuestGuard is the inverse of [AuthGuard]: signed-in users are sent to the
// dashboard instead of login and registration screens.
type GuestGuard struct {
	users     store.UserStateRepository
	navigator DashboardNavigator
	logger    *logger.Logger
}

func NewGuestGuard(users store.UserStateRepository, navigator DashboardNavigator, logger *logger.Logger) *GuestGuard {
	return &GuestGuard{users: users, navigator: navigator, logger: logger}
}

func (g *GuestGuard) CanActivate(ctx context.Context, _ string) bool {
	if !signedIn(ctx, g.users, g.logger) {
		return true
	}

	if g.navigator != nil {
		g.navigator.RedirectToDashboard(ctx)
	}
	return false
}

// signedIn reports whether the cached record carries an id and an e-mail.
// An undecodable record is deleted.
func signedIn(ctx context.Context, users store.UserStateRepository, log *logger.Logger) bool {
	user, err := users.LoadUser(ctx)
	if err != nil {
		if errors.Is(err, store.ErrCorruptUserState) {
			if err = users.DeleteUser(ctx); err != nil {
				log.Err(err).Msg("failed to delete corrupt user record")
			}
		}
		return false
	}

	return user.Valid()
}
