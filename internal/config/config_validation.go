// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before any view is built.
// Only source-independent invariants are checked here; the views validate
// what their binary needs.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Profile {
	case "", ProfileDevelopment, ProfileProduction:
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.Retries != nil && *cfg.Adapter.Retries < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.RefreshTimeout <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration <= 0 || cfg.Auth.RefreshTokenDuration < cfg.Auth.AccessTokenDuration {
		return ErrInvalidAuthConfigs
	}

	return nil
}
