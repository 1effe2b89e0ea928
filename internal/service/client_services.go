package service

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-hr-portal/internal/adapter"
	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/session"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/internal/transport"
)

// ClientNavigator is where the client sends the user when a guard or the
// session manager decides the current screen cannot stay open.
type ClientNavigator interface {
	session.Navigator
	DashboardNavigator
}

type ClientServices struct {
	Sessions        *session.Manager
	HTTPClient      adapter.HTTPClient
	AuthService     AuthService
	EmployeeService EmployeeService
	AuthGuard       Guard
	GuestGuard      Guard
}

// NewClientServices assembles the HTTP wrapper over the interceptor chain
// (cookies, logging, credentials, refresh) and the services built on it.
// base is the innermost round tripper; nil means http.DefaultTransport.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, navigator ClientNavigator,
	base http.RoundTripper, logger *logger.Logger) (*ClientServices, error) {
	sessions := session.NewManager(cfg.Session, navigator, logger)

	var jar http.CookieJar
	var cookies CookieCleaner
	if storages.Jar != nil {
		jar, cookies = storages.Jar, storages.Jar
	}

	rt := transport.Chain(transport.Cookies(jar, base),
		transport.Logging(cfg.Logging.Enabled, logger),
		transport.Credentials(),
		transport.Refresh(sessions, logger),
	)

	client, err := adapter.NewClient(cfg, rt, logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &ClientServices{
		Sessions:        sessions,
		HTTPClient:      client,
		AuthService:     NewClientAuthService(client, storages.UserState, cookies, sessions, navigator, logger),
		EmployeeService: NewClientEmployeeService(client, logger),
		AuthGuard:       NewAuthGuard(storages.UserState, navigator, logger),
		GuestGuard:      NewGuestGuard(storages.UserState, navigator, logger),
	}, nil
}
