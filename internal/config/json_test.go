package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "profile": "production" },
		"adapter": {
			"http_address": "https://hr.example.com",
			"request_timeout": "20s",
			"retries": 1,
			"retry_wait": "250ms",
			"download_dir": "/srv/downloads"
		},
		"cache": { "enabled": true, "ttl": "10m" },
		"logging": { "enabled": false },
		"session": { "refresh_timeout": "5s" },
		"storage": { "db": { "dsn": "/var/lib/hr/client.db" } },
		"server": { "http_address": "0.0.0.0:4000", "request_timeout": "45s", "secure_cookies": true },
		"auth": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "hr",
			"access_token_duration": "2m",
			"refresh_token_duration": "12h"
		},
		"workers": { "janitor_interval": 30000000000 }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ProfileProduction, cfg.App.Profile)
	assert.Equal(t, "https://hr.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Adapter.Retries)
	assert.Equal(t, 1, *cfg.Adapter.Retries)
	assert.Equal(t, 250*time.Millisecond, cfg.Adapter.RetryWait)
	assert.Equal(t, "/srv/downloads", cfg.Adapter.DownloadDir)
	require.NotNil(t, cfg.Cache.Enabled)
	assert.True(t, *cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.NotNil(t, cfg.Logging.Enabled)
	assert.False(t, *cfg.Logging.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Session.RefreshTimeout)
	assert.Equal(t, "/var/lib/hr/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	require.NotNil(t, cfg.Server.SecureCookies)
	assert.True(t, *cfg.Server.SecureCookies)
	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "hr", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 12*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Workers.JanitorInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
