package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress        = "localhost:4000"
	defaultServerRequestTimeout = 30 * time.Second
	defaultDevTokenSignKey      = "dev-token-sign-key"
	defaultTokenIssuer          = "hr-devserver"
	defaultAccessTokenDuration  = 5 * time.Minute
	defaultRefreshTokenDuration = 24 * time.Hour
	defaultJanitorInterval      = time.Minute
)

// ServerAuth holds the token settings of the development API server.
type ServerAuth struct {
	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

// ServerHTTP holds the listener settings of the development API server.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	SecureCookies  bool
}

// ServerWorkers holds background worker settings.
type ServerWorkers struct {
	JanitorInterval time.Duration
}

// ServerConfig is the development API server view of [StructuredConfig].
type ServerConfig struct {
	Profile string
	Server  ServerHTTP
	Auth    ServerAuth
	Workers ServerWorkers
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg onto a [ServerConfig], filling unset values from
// the profile defaults. Production has no default signing key and marks
// cookies Secure.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	profile := cfg.App.Profile
	if profile == "" {
		profile = ProfileDevelopment
	}
	production := profile == ProfileProduction

	serverCfg := &ServerConfig{
		Profile: profile,
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: durationOr(cfg.Server.RequestTimeout, defaultServerRequestTimeout),
			SecureCookies:  boolOr(cfg.Server.SecureCookies, production),
		},
		Auth: ServerAuth{
			TokenSignKey:         cfg.Auth.TokenSignKey,
			TokenIssuer:          cfg.Auth.TokenIssuer,
			AccessTokenDuration:  durationOr(cfg.Auth.AccessTokenDuration, defaultAccessTokenDuration),
			RefreshTokenDuration: durationOr(cfg.Auth.RefreshTokenDuration, defaultRefreshTokenDuration),
		},
		Workers: ServerWorkers{
			JanitorInterval: durationOr(cfg.Workers.JanitorInterval, defaultJanitorInterval),
		},
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.Auth.TokenSignKey == "" && !production {
		serverCfg.Auth.TokenSignKey = defaultDevTokenSignKey
	}

	return serverCfg
}
