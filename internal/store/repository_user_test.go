package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(logger.Nop())

	created, err := repo.CreateUser(ctx, models.UserAccount{
		User:         models.User{Email: "A@B.com", Username: "alice"},
		PasswordHash: []byte("hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byEmail, err := repo.FindUserByEmail(ctx, " a@b.com ")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.FindUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(logger.Nop())

	_, err := repo.CreateUser(ctx, models.UserAccount{User: models.User{Email: "a@b.com"}})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.UserAccount{User: models.User{Email: "a@b.com"}})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(logger.Nop())

	_, err := repo.FindUserByEmail(context.Background(), "nobody@b.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	_, err = repo.FindUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSessionRepository_TakeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(logger.Nop())
	session := models.RefreshSession{Token: "r1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, repo.SaveSession(ctx, session))

	got, err := repo.TakeSession(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = repo.TakeSession(ctx, "r1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(logger.Nop())
	now := time.Now()

	require.NoError(t, repo.SaveSession(ctx, models.RefreshSession{Token: "old", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.SaveSession(ctx, models.RefreshSession{Token: "edge", ExpiresAt: now}))
	require.NoError(t, repo.SaveSession(ctx, models.RefreshSession{Token: "live", ExpiresAt: now.Add(time.Hour)}))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = repo.TakeSession(ctx, "live")
	assert.NoError(t, err)
}

func TestAvatarFileStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewAvatarFileStorage()

	data := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, storage.SaveAvatar(ctx, models.AvatarFile{EmployeeID: "1", ContentType: "image/png", Data: data}))
	data[0] = 0

	got, err := storage.LoadAvatar(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, byte(0x89), got.Data[0])
	assert.Equal(t, "image/png", got.ContentType)

	require.NoError(t, storage.DeleteAvatar(ctx, "1"))
	_, err = storage.LoadAvatar(ctx, "1")
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}
