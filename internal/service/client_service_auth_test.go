package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hr-portal/internal/adapter"
	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/mock"
	"github.com/MKhiriev/go-hr-portal/internal/session"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/models"
)

type fakeCookieCleaner struct {
	cleared int
	err     error
}

func (f *fakeCookieCleaner) Clear(context.Context) error {
	f.cleared++
	return f.err
}

type authDeps struct {
	client    *mock.MockHTTPClient
	users     *mock.MockUserStateRepository
	navigator *mock.MockNavigator
	cookies   *fakeCookieCleaner
	sessions  *session.Manager
}

// newTestAuthSvc builds clientAuthService over mocks and a real session
// manager.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, authDeps) {
	t.Helper()

	deps := authDeps{
		client:    mock.NewMockHTTPClient(ctrl),
		users:     mock.NewMockUserStateRepository(ctrl),
		navigator: mock.NewMockNavigator(ctrl),
		cookies:   &fakeCookieCleaner{},
	}
	deps.sessions = session.NewManager(config.ClientSession{RefreshTimeout: time.Second}, deps.navigator, logger.Nop())

	svc := NewClientAuthService(deps.client, deps.users, deps.cookies, deps.sessions, deps.navigator, logger.Nop()).(*clientAuthService)
	return svc, deps
}

// replyWith fills the auth envelope the way the adapter decodes a response.
func replyWith(user models.User) func(context.Context, string, any, adapter.Envelope, ...adapter.Option) error {
	return func(_ context.Context, _ string, _ any, out adapter.Envelope, _ ...adapter.Option) error {
		env := out.(*models.Envelope[models.AuthData])
		env.Success = true
		env.Data.User = user
		return nil
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_PersistsUserAndAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "a@b.com", Password: "secret1"}
	user := models.User{ID: 7, Email: "a@b.com", Username: "ab"}

	require.False(t, svc.IsAuthenticated())

	gomock.InOrder(
		deps.client.EXPECT().PostWithEnvelope(ctx, loginEndpoint, creds, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ any, out adapter.Envelope, _ ...adapter.Option) error {
				env := out.(*models.Envelope[models.AuthData])
				env.Success = true
				env.Data.User = user
				return nil
			}),
		deps.users.EXPECT().SaveUser(ctx, user).Return(nil),
	)

	got, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.True(t, svc.IsAuthenticated())

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestClientAuthService_Login_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	apiErr := &adapter.APIError{Message: "Invalid email or password", Status: 401}
	deps.client.EXPECT().PostWithEnvelope(ctx, loginEndpoint, gomock.Any(), gomock.Any(), gomock.Any()).Return(apiErr)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrLoginFailed)

	var target *adapter.APIError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "Invalid email or password", target.Message)
	assert.False(t, svc.IsAuthenticated())
}

func TestClientAuthService_Login_RearmsExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	deps.users.EXPECT().DeleteUser(gomock.Any()).Return(nil)
	deps.client.EXPECT().ClearCache()
	deps.navigator.EXPECT().RedirectToLogin(gomock.Any(), "/employees")
	deps.sessions.Expire(ctx, "/employees")
	require.True(t, deps.sessions.Expired())

	user := models.User{ID: 1, Email: "a@b.com"}
	deps.client.EXPECT().PostWithEnvelope(ctx, loginEndpoint, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(replyWith(user))
	deps.users.EXPECT().SaveUser(ctx, user).Return(nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, deps.sessions.Expired())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_ClearsEvenOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		postErr error
	}{
		{name: "server accepted", postErr: nil},
		{name: "server failed", postErr: &adapter.APIError{Message: "Service Unavailable", Status: 503}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, deps := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			svc.user = &models.User{ID: 1, Email: "a@b.com"}

			gomock.InOrder(
				deps.client.EXPECT().Post(ctx, logoutEndpoint, struct{}{}, nil, gomock.Any()).Return(tt.postErr),
				deps.users.EXPECT().DeleteUser(ctx).Return(nil),
				deps.client.EXPECT().ClearCache(),
				deps.navigator.EXPECT().RedirectToLogin(ctx, ""),
			)

			err := svc.Logout(ctx)
			if tt.postErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.False(t, svc.IsAuthenticated())
			assert.Equal(t, 1, deps.cookies.cleared)
		})
	}
}

// ── RefreshTokens ────────────────────────────────────────────────────────────

func TestClientAuthService_RefreshTokens_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	deps.client.EXPECT().Post(gomock.Any(), refreshEndpoint, struct{}{}, nil, gomock.Any()).Return(nil)

	require.NoError(t, svc.RefreshTokens(ctx))
	assert.Equal(t, uint64(1), deps.sessions.Generation())
}

func TestClientAuthService_RefreshTokens_FailureTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := session.WithReturnTo(context.Background(), "/employees/5")

	svc.user = &models.User{ID: 1, Email: "a@b.com"}

	deps.client.EXPECT().Post(gomock.Any(), refreshEndpoint, gomock.Any(), nil, gomock.Any()).
		Return(&adapter.APIError{Message: "Unauthorized: Please login again.", Status: 401})
	deps.users.EXPECT().DeleteUser(gomock.Any()).Return(nil)
	deps.client.EXPECT().ClearCache()
	deps.navigator.EXPECT().RedirectToLogin(gomock.Any(), "/employees/5")

	err := svc.RefreshTokens(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.ErrorIs(t, err, session.ErrRefreshFailed)
	assert.False(t, svc.IsAuthenticated())
	assert.Equal(t, 1, deps.cookies.cleared)
}

// ── GetCurrentUser / CheckAuthStatus ─────────────────────────────────────────

func TestClientAuthService_GetCurrentUser(t *testing.T) {
	t.Run("success stores the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestAuthSvc(t, ctrl)
		ctx := context.Background()

		user := models.User{ID: 3, Email: "c@d.com"}
		deps.client.EXPECT().GetWithEnvelope(ctx, meEndpoint, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out adapter.Envelope, _ ...adapter.Option) error {
				env := out.(*models.Envelope[models.AuthData])
				env.Success = true
				env.Data.User = user
				return nil
			})
		deps.users.EXPECT().SaveUser(ctx, user).Return(nil)

		got, err := svc.GetCurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.True(t, svc.IsAuthenticated())
	})

	t.Run("failure clears the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, deps := newTestAuthSvc(t, ctrl)
		ctx := context.Background()

		svc.user = &models.User{ID: 3, Email: "c@d.com"}
		deps.client.EXPECT().GetWithEnvelope(ctx, meEndpoint, gomock.Any(), gomock.Any()).
			Return(&adapter.APIError{Message: "Unauthorized: Please login again.", Status: 401})
		deps.users.EXPECT().DeleteUser(ctx).Return(nil)
		deps.client.EXPECT().ClearCache()

		_, err := svc.GetCurrentUser(ctx)
		require.Error(t, err)
		assert.False(t, svc.IsAuthenticated())
	})
}

func TestClientAuthService_CheckAuthStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	deps.client.EXPECT().GetWithEnvelope(ctx, meEndpoint, gomock.Any(), gomock.Any()).
		Return(&adapter.APIError{Message: "Client Error: connection refused", Err: errors.New("connection refused")})
	deps.users.EXPECT().DeleteUser(ctx).Return(nil)
	deps.client.EXPECT().ClearCache()

	assert.False(t, svc.CheckAuthStatus(ctx))
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore(t *testing.T) {
	user := models.User{ID: 9, Email: "r@s.com"}

	tests := []struct {
		name      string
		loadUser  models.User
		loadErr   error
		expectDel bool
		wantErr   bool
		wantAuth  bool
	}{
		{name: "cached user", loadUser: user, wantAuth: true},
		{name: "nothing cached", loadErr: store.ErrUserStateNotFound},
		{name: "corrupt record is deleted", loadErr: store.ErrCorruptUserState, expectDel: true},
		{name: "storage failure", loadErr: errors.New("disk I/O error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, deps := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			deps.users.EXPECT().LoadUser(ctx).Return(tt.loadUser, tt.loadErr)
			if tt.expectDel {
				deps.users.EXPECT().DeleteUser(ctx).Return(nil)
			}

			err := svc.Restore(ctx)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAuth, svc.IsAuthenticated())
		})
	}
}
