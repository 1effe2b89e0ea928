package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-hr-portal/internal/adapter"
	"github.com/MKhiriev/go-hr-portal/models"
)

// AuthService is the client-side authentication contract. The session itself
// lives in server-issued cookies; the service keeps an advisory copy of the
// signed-in user.
type AuthService interface {
	// Login posts credentials to /api/auth/login. On success the user is
	// cached and the session is re-armed.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout posts to /api/auth/logout and then clears local data and
	// redirects to login, also when the call fails.
	Logout(ctx context.Context) error

	// RefreshTokens asks the server for new session cookies, sharing a
	// refresh already in flight. A failed refresh tears the session down.
	RefreshTokens(ctx context.Context) error

	// GetCurrentUser loads /api/auth/me. Success caches the user; failure
	// clears the cached record.
	GetCurrentUser(ctx context.Context) (models.User, error)

	// CheckAuthStatus reconciles the cached record with the server and
	// reports whether the user is signed in.
	CheckAuthStatus(ctx context.Context) bool

	// Restore loads the cached record at startup. A corrupt record is
	// deleted.
	Restore(ctx context.Context) error

	CurrentUser() (models.User, bool)
	IsAuthenticated() bool
}

// EmployeeService is the employee directory as seen by the client.
type EmployeeService interface {
	GetAll(ctx context.Context, filter models.EmployeeFilter) (models.Paginated[models.Employee], error)
	GetByID(ctx context.Context, id string) (models.Employee, error)
	Create(ctx context.Context, employee models.CreateEmployee) (models.Employee, error)
	Update(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error)
	Delete(ctx context.Context, id string) error
	// GetStatistics is served from the read cache when it is enabled.
	GetStatistics(ctx context.Context) (models.EmployeeStatistics, error)
	// ExportCSV downloads the directory as employees.csv.
	ExportCSV(ctx context.Context, filter models.EmployeeFilter) (adapter.Downloaded, error)
	UploadAvatar(ctx context.Context, id, filename string, image io.Reader) (models.Avatar, error)
}

// Guard decides whether the screen at target may be opened.
type Guard interface {
	CanActivate(ctx context.Context, target string) bool
}

// DashboardNavigator moves a signed-in user away from guest-only screens.
type DashboardNavigator interface {
	RedirectToDashboard(ctx context.Context)
}

// CookieCleaner forgets every stored session cookie.
type CookieCleaner interface {
	Clear(ctx context.Context) error
}
