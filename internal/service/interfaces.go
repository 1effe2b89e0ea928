package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-hr-portal/internal/utils"
	"github.com/MKhiriev/go-hr-portal/models"
)

// TokenService issues and verifies the access tokens of the development API
// server.
type TokenService interface {
	IssueAccessToken(ctx context.Context, userID int64) (utils.AccessToken, error)
	// ParseAccessToken returns ErrTokenIsExpired for an expired token and
	// ErrTokenIsExpiredOrInvalid for anything else it rejects.
	ParseAccessToken(ctx context.Context, token string) (utils.AccessToken, error)
}

// ServerAuthService implements the /api/auth endpoints of the development
// API server.
type ServerAuthService interface {
	Register(ctx context.Context, registration models.Registration) (models.User, error)
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.SessionTokens, error)
	// Refresh consumes refreshToken and issues a new token pair.
	Refresh(ctx context.Context, refreshToken string) (models.User, models.SessionTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseAccessToken(ctx context.Context, token string) (int64, error)
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	// PurgeExpiredSessions drops refresh sessions past their expiry.
	PurgeExpiredSessions(ctx context.Context) (int, error)
}

// ServerEmployeeService implements the /employees endpoints of the
// development API server.
type ServerEmployeeService interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, models.Pagination, error)
	Get(ctx context.Context, id string) (models.Employee, error)
	Create(ctx context.Context, employee models.CreateEmployee) (models.Employee, error)
	Update(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (models.EmployeeStatistics, error)
	// ExportCSV writes every employee matching filter to w, header first.
	ExportCSV(ctx context.Context, filter models.EmployeeFilter, w io.Writer) error
	SaveAvatar(ctx context.Context, avatar models.AvatarFile) (models.Avatar, error)
	Avatar(ctx context.Context, employeeID string) (models.AvatarFile, error)
}

// ServerEmployeeServiceWrapper decorates a ServerEmployeeService, e.g. with
// input validation.
type ServerEmployeeServiceWrapper interface {
	Wrap(ServerEmployeeService) ServerEmployeeService
}
