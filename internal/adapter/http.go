// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/transport"
)

var _ HTTPClient = (*Client)(nil)

// Client is the resty-backed implementation of [HTTPClient].
type Client struct {
	client  *resty.Client
	baseURL string

	timeout     time.Duration
	retries     int
	retryWait   time.Duration
	downloadDir string

	cache *responseCache

	logErrors  bool
	production bool
	logger     *logger.Logger
}

// NewClient constructs a [Client] for the HR API at cfg.Adapter.HTTPAddress.
// rt is installed as the round tripper of every request; pass the
// interceptor chain built with transport.Chain. A nil rt uses the default
// transport.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewClient(cfg *config.ClientConfig, rt http.RoundTripper, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if rt == nil {
		rt = http.DefaultTransport
	}

	// cookies are handled by the transport chain
	client := resty.New().
		SetTransport(rt).
		SetCookieJar(nil).
		SetLogger(logger.Resty())

	c := &Client{
		client:      client,
		baseURL:     baseURL,
		timeout:     cfg.Adapter.RequestTimeout,
		retries:     max(cfg.Adapter.Retries, 0),
		retryWait:   cfg.Adapter.RetryWait,
		downloadDir: cfg.Adapter.DownloadDir,
		logErrors:   cfg.Logging.Enabled,
		production:  cfg.Production(),
		logger:      logger,
	}
	if cfg.Cache.Enabled && cfg.Cache.TTL > 0 {
		c.cache = newResponseCache(cfg.Cache.TTL)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalized API address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// call describes one logical request.
type call struct {
	method   string
	endpoint string
	body     any
	files    []UploadFile
	opts     requestOptions
	timeout  time.Duration
	retry    bool
}

// execute sends the call, retrying reads, and returns the successful
// response. Every failure is an [*APIError] and is logged once.
func (c *Client) execute(ctx context.Context, cl call) (*resty.Response, error) {
	if cl.timeout <= 0 {
		cl.timeout = c.timeout
	}

	var resp *resty.Response
	attempt := func(ctx context.Context) error {
		r, err := c.attempt(ctx, cl)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && cl.retry && retryable(apiErr) {
				return retry.RetryableError(apiErr)
			}
			return err
		}
		resp = r
		return nil
	}

	var err error
	if cl.retry && c.retries > 0 {
		err = retry.Do(ctx, c.backoff(), attempt)
	} else {
		err = attempt(ctx)
	}
	if err != nil {
		apiErr := mapTransportError(err)
		c.logError(cl, apiErr)
		return nil, apiErr
	}

	return resp, nil
}

func (c *Client) backoff() retry.Backoff {
	wait := c.retryWait
	if wait <= 0 {
		wait = time.Millisecond
	}
	return retry.WithMaxRetries(uint64(c.retries), retry.NewConstant(wait))
}

// attempt performs a single HTTP exchange bounded by the call timeout.
func (c *Client) attempt(ctx context.Context, cl call) (*resty.Response, error) {
	if cl.opts.credentials {
		ctx = transport.WithCredentials(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, cl.timeout)
	defer cancel()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", cl.opts.responseType.accept()).
		SetQueryParamsFromValues(encodeParams(cl.opts.params))

	if cl.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}
	for _, f := range cl.files {
		req.SetFileReader(f.Field, f.Name, f.Reader)
	}
	// explicit headers win over defaults
	req.SetHeaders(cl.opts.headers)

	resp, err := req.Execute(cl.method, c.url(cl.endpoint))
	if err != nil {
		return nil, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// decode hands the body of resp to out according to the response type.
func decode(resp *resty.Response, out any, rt ResponseType) error {
	if out == nil {
		return nil
	}

	body := resp.Body()
	switch target := out.(type) {
	case *[]byte:
		*target = append([]byte(nil), body...)
		return nil
	case *string:
		*target = string(body)
		return nil
	}

	if rt != ResponseJSON {
		return mapDecodeError(resp, fmt.Errorf("%w: %T for %s response", ErrUnsupportedTarget, out, rt))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return mapDecodeError(resp, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	return nil
}

func checkEnvelope(resp *resty.Response, env Envelope) error {
	if env.OK() {
		return nil
	}
	return newEnvelopeError(env, resp.StatusCode())
}

func (c *Client) logError(cl call, err *APIError) {
	if !c.logErrors {
		return
	}

	if c.production {
		c.logger.Error().Msg(err.Message)
		return
	}

	c.logger.Error().
		Err(err.Err).
		Str("method", cl.method).
		Str("endpoint", cl.endpoint).
		Int("status", err.Status).
		Str("status_text", err.StatusText).
		Msg(err.Message)
}
