package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hr-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores the accounts of the development API server.
type UserRepository interface {
	CreateUser(ctx context.Context, account models.UserAccount) (models.UserAccount, error)
	FindUserByEmail(ctx context.Context, email string) (models.UserAccount, error)
	FindUserByID(ctx context.Context, id int64) (models.UserAccount, error)
}

// SessionRepository stores refresh sessions of the development API server.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.RefreshSession) error
	// TakeSession removes and returns the session, so a refresh token can be
	// used only once.
	TakeSession(ctx context.Context, token string) (models.RefreshSession, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// EmployeeRepository stores the employee directory of the development API
// server.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, models.Pagination, error)
	AllEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	Statistics(ctx context.Context) (models.EmployeeStatistics, error)
}

// AvatarFileStorage keeps uploaded avatar images.
type AvatarFileStorage interface {
	SaveAvatar(ctx context.Context, avatar models.AvatarFile) error
	LoadAvatar(ctx context.Context, employeeID string) (models.AvatarFile, error)
	DeleteAvatar(ctx context.Context, employeeID string) error
}
