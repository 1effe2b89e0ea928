package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool is a flag.Value that records whether the flag was given at
// all, so an omitted flag does not override other sources.
type optionalBool struct {
	value *bool
}

// optionalInt is the integer counterpart of optionalBool.
type optionalInt struct {
	value *int
}

// ParseFlags parses configuration flags from args and returns the
// remaining positional arguments.
//
// Flags:
//
//	-profile development|production
//	-api HR API base address (e.g. http://localhost:4000)
//	-request-timeout per-attempt request timeout (e.g. "10s")
//	-retries extra attempts for read requests
//	-retry-wait pause between read attempts
//	-download-dir directory for downloaded files
//	-log enable request logging (true/false)
//	-cache enable cached reads (true/false)
//	-cache-ttl cached read lifetime
//	-refresh-timeout bound on refresh and refresh waits
//	-d local database DSN
//	-a development server address in format [host]:[port]
//	-token-sign-key development server token signing key
//	-token-issuer development server token issuer
//	-access-ttl access cookie lifetime
//	-refresh-ttl refresh cookie lifetime
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("hr-portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var profile, apiAddress, downloadDir, dsn, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, retryWait, cacheTTL, refreshTimeout time.Duration
	var accessTTL, refreshTTL time.Duration
	var retries optionalInt
	var logging, cache optionalBool

	fs.StringVar(&profile, "profile", "", "Profile: development or production")
	fs.StringVar(&apiAddress, "api", "", "HR API base address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.Var(&retries, "retries", "Extra attempts for read requests")
	fs.DurationVar(&retryWait, "retry-wait", 0, "Pause between read attempts")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded files")
	fs.Var(&logging, "log", "Enable request logging")
	fs.Var(&cache, "cache", "Enable cached reads")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Cached read lifetime")
	fs.DurationVar(&refreshTimeout, "refresh-timeout", 0, "Bound on token refresh")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTTL, "access-ttl", 0, "Access cookie lifetime")
	fs.DurationVar(&refreshTTL, "refresh-ttl", 0, "Refresh cookie lifetime")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{Profile: profile},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
			Retries:        retries.value,
			RetryWait:      retryWait,
			DownloadDir:    downloadDir,
		},
		Cache:   Cache{Enabled: cache.value, TTL: cacheTTL},
		Logging: Logging{Enabled: logging.value},
		Session: Session{RefreshTimeout: refreshTimeout},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server:  Server{HTTPAddress: serverAddress.String()},
		Auth: Auth{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTTL,
			RefreshTokenDuration: refreshTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (b *optionalBool) String() string {
	if b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets "-log" be given without a value.
func (b *optionalBool) IsBoolFlag() bool { return true }

func (i *optionalInt) String() string {
	if i.value == nil {
		return ""
	}
	return strconv.Itoa(*i.value)
}

func (i *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("value must not be negative")
	}
	i.value = &v
	return nil
}
