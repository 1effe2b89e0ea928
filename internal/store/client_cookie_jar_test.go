package store

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestSQLite(t *testing.T) *DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "state", "client.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return db
}

func cookieNames(cookies []*http.Cookie) map[string]string {
	out := make(map[string]string, len(cookies))
	for _, c := range cookies {
		out[c.Name] = c.Value
	}
	return out
}

var apiURL, _ = url.Parse("http://localhost:4000/api/auth/login")

// ── PersistentJar ─────────────────────────────────────────────────────────────

func TestPersistentJar_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)
	repo := NewCookieRepository(db, logger.Nop())

	jar, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)

	jar.SetCookies(apiURL, []*http.Cookie{
		{Name: "access_token", Value: "a1", Path: "/", MaxAge: 300, HttpOnly: true},
		{Name: "refresh_token", Value: "r1", Path: "/", MaxAge: 3600, HttpOnly: true},
	})
	assert.Equal(t, map[string]string{"access_token": "a1", "refresh_token": "r1"}, cookieNames(jar.Cookies(apiURL)))

	restored, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)

	employees, _ := url.Parse("http://localhost:4000/employees/5")
	assert.Equal(t, map[string]string{"access_token": "a1", "refresh_token": "r1"}, cookieNames(restored.Cookies(employees)))
}

func TestPersistentJar_RotationOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewCookieRepository(newTestSQLite(t), logger.Nop())

	jar, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)

	jar.SetCookies(apiURL, []*http.Cookie{{Name: "refresh_token", Value: "r1", Path: "/", MaxAge: 60}})
	jar.SetCookies(apiURL, []*http.Cookie{{Name: "refresh_token", Value: "r2", Path: "/", MaxAge: 60}})

	stored, err := repo.LoadCookies(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "r2", stored[0].Value)
}

func TestPersistentJar_DeletionCookieRemovesRow(t *testing.T) {
	ctx := context.Background()
	repo := NewCookieRepository(newTestSQLite(t), logger.Nop())

	jar, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)

	jar.SetCookies(apiURL, []*http.Cookie{{Name: "access_token", Value: "a1", Path: "/", MaxAge: 60}})
	jar.SetCookies(apiURL, []*http.Cookie{{Name: "access_token", Value: "", Path: "/", MaxAge: -1}})

	assert.Empty(t, jar.Cookies(apiURL))
	stored, err := repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPersistentJar_DropsExpiredOnLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewCookieRepository(newTestSQLite(t), logger.Nop())

	require.NoError(t, repo.SaveCookie(ctx, StoredCookie{
		Origin:  "http://localhost:4000",
		Name:    "access_token",
		Path:    "/",
		Value:   "old",
		Expires: time.Now().Add(-time.Minute),
	}))

	jar, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, jar.Cookies(apiURL))

	stored, err := repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPersistentJar_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewCookieRepository(newTestSQLite(t), logger.Nop())

	jar, err := NewPersistentJar(ctx, repo, logger.Nop())
	require.NoError(t, err)
	jar.SetCookies(apiURL, []*http.Cookie{{Name: "access_token", Value: "a1", Path: "/"}})

	require.NoError(t, jar.Clear(ctx))
	assert.Empty(t, jar.Cookies(apiURL))

	stored, err := repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestToStoredCookie(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := now.Add(time.Hour)

	tests := []struct {
		name    string
		cookie  *http.Cookie
		expires time.Time
		path    string
	}{
		{name: "max-age wins", cookie: &http.Cookie{Name: "a", MaxAge: 60, Expires: at}, expires: now.Add(time.Minute), path: "/"},
		{name: "expires", cookie: &http.Cookie{Name: "a", Expires: at, Path: "/api"}, expires: at, path: "/api"},
		{name: "session", cookie: &http.Cookie{Name: "a"}, path: "/"},
		{name: "delete", cookie: &http.Cookie{Name: "a", MaxAge: -1}, expires: now, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toStoredCookie("http://h", tt.cookie, now)
			assert.Equal(t, tt.expires, got.Expires)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, "http://h", got.Origin)
		})
	}
}

// ── ClientStorages ────────────────────────────────────────────────────────────

func TestNewClientStorages(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = storages.UserState.LoadUser(ctx)
	assert.ErrorIs(t, err, ErrUserStateNotFound)
	assert.NotNil(t, storages.Jar)
}
