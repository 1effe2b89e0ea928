package config

import (
	"fmt"
	"time"
)

const (
	defaultAPIAddress         = "http://localhost:4000"
	defaultDevRequestTimeout  = 10 * time.Second
	defaultProdRequestTimeout = 30 * time.Second
	defaultRetries            = 2
	defaultRetryWait          = 500 * time.Millisecond
	defaultCacheTTL           = 5 * time.Minute
	defaultRefreshTimeout     = 15 * time.Second
	defaultClientDSN          = "hr-client.db"
	defaultDownloadDir        = "."
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HR API base address.
	HTTPAddress string
	// RequestTimeout bounds a single request attempt.
	RequestTimeout time.Duration
	// Retries is the number of extra attempts for reads.
	Retries int
	// RetryWait is the pause between read attempts.
	RetryWait time.Duration
	// DownloadDir is where downloads are saved.
	DownloadDir string
}

// ClientCache controls cached reads.
type ClientCache struct {
	Enabled bool
	TTL     time.Duration
}

// ClientLogging controls the logging interceptor.
type ClientLogging struct {
	Enabled bool
}

// ClientSession controls the refresh policy.
type ClientSession struct {
	// RefreshTimeout bounds the refresh call and every wait on it.
	RefreshTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Profile is the active profile.
	Profile string
	// Adapter contains the HR API address and request policy.
	Adapter ClientAdapter
	// Cache contains the cached-read policy.
	Cache ClientCache
	// Logging contains the HTTP logging toggle.
	Logging ClientLogging
	// Session contains the refresh policy.
	Session ClientSession
	// Storage contains client storage settings.
	Storage ClientStorage
}

// Production reports whether the production profile is active.
func (cfg *ClientConfig) Production() bool {
	return cfg.Profile == ProfileProduction
}

// GetClientConfig builds and validates the client view of the merged
// configuration and returns the positional arguments left after flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, rest, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig], filling unset values from
// the profile defaults. Development uses a shorter timeout and no cache;
// production uses a longer timeout and caches reference data.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	profile := cfg.App.Profile
	if profile == "" {
		profile = ProfileDevelopment
	}
	production := profile == ProfileProduction

	clientCfg := &ClientConfig{
		Profile: profile,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Retries:        intOr(cfg.Adapter.Retries, defaultRetries),
			RetryWait:      durationOr(cfg.Adapter.RetryWait, defaultRetryWait),
			DownloadDir:    cfg.Adapter.DownloadDir,
		},
		Cache: ClientCache{
			Enabled: boolOr(cfg.Cache.Enabled, production),
			TTL:     durationOr(cfg.Cache.TTL, defaultCacheTTL),
		},
		Logging: ClientLogging{Enabled: boolOr(cfg.Logging.Enabled, true)},
		Session: ClientSession{
			RefreshTimeout: durationOr(cfg.Session.RefreshTimeout, defaultRefreshTimeout),
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultDevRequestTimeout
		if production {
			clientCfg.Adapter.RequestTimeout = defaultProdRequestTimeout
		}
	}
	if clientCfg.Adapter.HTTPAddress == "" && !production {
		clientCfg.Adapter.HTTPAddress = defaultAPIAddress
	}
	if clientCfg.Adapter.DownloadDir == "" {
		clientCfg.Adapter.DownloadDir = defaultDownloadDir
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultClientDSN
	}

	return clientCfg
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v == 0 {
		return fallback
	}
	return v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
