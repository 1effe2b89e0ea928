// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PROFILE": "production",

		"ADAPTER_ADDRESS":         "https://hr.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "25s",
		"ADAPTER_RETRIES":         "4",
		"ADAPTER_RETRY_WAIT":      "2s",
		"ADAPTER_DOWNLOAD_DIR":    "/tmp",

		"CACHE_ENABLED":           "false",
		"CACHE_TTL":               "30s",
		"LOGGING_ENABLED":         "true",
		"SESSION_REFRESH_TIMEOUT": "3s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN": ":memory:",

		"SERVER_ADDRESS":        "localhost:4001",
		"SERVER_SECURE_COOKIES": "true",

		"AUTH_TOKEN_SIGN_KEY":         "secret",
		"AUTH_ACCESS_TOKEN_DURATION":  "1m",
		"AUTH_REFRESH_TOKEN_DURATION": "2h",

		"WORKERS_JANITOR_INTERVAL": "10s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, ProfileProduction, cfg.App.Profile)
	assert.Equal(t, "https://hr.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Adapter.Retries)
	assert.Equal(t, 4, *cfg.Adapter.Retries)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RetryWait)
	assert.Equal(t, "/tmp", cfg.Adapter.DownloadDir)
	require.NotNil(t, cfg.Cache.Enabled)
	assert.False(t, *cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	require.NotNil(t, cfg.Logging.Enabled)
	assert.True(t, *cfg.Logging.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Session.RefreshTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:4001", cfg.Server.HTTPAddress)
	require.NotNil(t, cfg.Server.SecureCookies)
	assert.True(t, *cfg.Server.SecureCookies)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 2*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Workers.JanitorInterval)
}

func TestParseEnv_Unset(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Nil(t, cfg.Cache.Enabled)
	assert.Nil(t, cfg.Adapter.Retries)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "forever")
	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
