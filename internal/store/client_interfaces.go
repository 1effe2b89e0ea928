package store

import (
	"context"

	"github.com/MKhiriev/go-hr-portal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// UserStateRepository keeps the cached user record of the signed-in user.
type UserStateRepository interface {
	// LoadUser returns [ErrUserStateNotFound] when nothing is cached and
	// [ErrCorruptUserState] when the stored value is not a user record.
	LoadUser(ctx context.Context) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context) error
}

// CookieRepository persists the session cookies of the client.
type CookieRepository interface {
	LoadCookies(ctx context.Context) ([]StoredCookie, error)
	SaveCookie(ctx context.Context, cookie StoredCookie) error
	DeleteCookie(ctx context.Context, origin, name, path string) error
	DeleteAllCookies(ctx context.Context) error
}
