package store

import (
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

// Storages groups the in-memory stores of the development API server.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	EmployeeRepository EmployeeRepository
	AvatarStorage      AvatarFileStorage
}

// NewStorages builds empty user and session stores and an employee store
// holding seed.
func NewStorages(logger *logger.Logger, seed ...models.Employee) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		UserRepository:     NewUserRepository(logger),
		SessionRepository:  NewSessionRepository(logger),
		EmployeeRepository: NewEmployeeRepository(logger, seed...),
		AvatarStorage:      NewAvatarFileStorage(),
	}
}
