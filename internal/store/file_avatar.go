package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-hr-portal/models"
)

// avatarFileStorage is the in-memory implementation of [AvatarFileStorage].
// Images are kept outside the employee records so that listing employees
// never copies image bytes.
type avatarFileStorage struct {
	mu      sync.RWMutex
	avatars map[string]models.AvatarFile
}

// NewAvatarFileStorage constructs an empty [AvatarFileStorage].
func NewAvatarFileStorage() AvatarFileStorage {
	return &avatarFileStorage{avatars: make(map[string]models.AvatarFile)}
}

// SaveAvatar replaces the avatar of avatar.EmployeeID.
func (a *avatarFileStorage) SaveAvatar(ctx context.Context, avatar models.AvatarFile) error {
	data := make([]byte, len(avatar.Data))
	copy(data, avatar.Data)
	avatar.Data = data

	a.mu.Lock()
	defer a.mu.Unlock()

	a.avatars[avatar.EmployeeID] = avatar
	return nil
}

// LoadAvatar returns [ErrAvatarNotFound] when nothing was uploaded.
func (a *avatarFileStorage) LoadAvatar(ctx context.Context, employeeID string) (models.AvatarFile, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	avatar, ok := a.avatars[employeeID]
	if !ok {
		return models.AvatarFile{}, ErrAvatarNotFound
	}
	return avatar, nil
}

func (a *avatarFileStorage) DeleteAvatar(ctx context.Context, employeeID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.avatars, employeeID)
	return nil
}
