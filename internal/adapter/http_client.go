package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hr-portal/models"
)

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	// Field is the form field name, e.g. "avatar".
	Field  string
	Name   string
	Reader io.Reader
}

// Downloaded is the result of [Client.Download].
type Downloaded struct {
	Data        []byte
	ContentType string
	// Path is where the bytes were saved; empty when no filename was given.
	Path string
}

// do executes cl and decodes the body into out.
func (c *Client) do(ctx context.Context, cl call, out any) (*resty.Response, error) {
	resp, err := c.execute(ctx, cl)
	if err != nil {
		return nil, err
	}
	if err = decode(resp, out, cl.opts.responseType); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.logError(cl, apiErr)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) withEnvelope(ctx context.Context, cl call, out Envelope) error {
	resp, err := c.do(ctx, cl, out)
	if err != nil {
		return err
	}
	return checkEnvelope(resp, out)
}

func (c *Client) Get(ctx context.Context, endpoint string, out any, opts ...Option) error {
	_, err := c.do(ctx, call{method: http.MethodGet, endpoint: endpoint, opts: buildOptions(opts), retry: true}, out)
	return err
}

func (c *Client) GetWithEnvelope(ctx context.Context, endpoint string, out Envelope, opts ...Option) error {
	return c.withEnvelope(ctx, call{method: http.MethodGet, endpoint: endpoint, opts: buildOptions(opts), retry: true}, out)
}

// GetPaginated implements [HTTPClient]. params win over keys set with
// [WithParams].
func (c *Client) GetPaginated(ctx context.Context, endpoint string, params models.QueryParams, out Envelope, opts ...Option) error {
	o := buildOptions(opts)
	maps.Copy(o.params, params)
	return c.withEnvelope(ctx, call{method: http.MethodGet, endpoint: endpoint, opts: o, retry: true}, out)
}

// GetCached implements [HTTPClient]. The cache key is the endpoint plus the
// encoded query. With caching disabled it behaves like Get and returns the
// fresh response.
func (c *Client) GetCached(ctx context.Context, endpoint string, out any, opts ...Option) (*resty.Response, error) {
	cl := call{method: http.MethodGet, endpoint: endpoint, opts: buildOptions(opts), retry: true}
	if c.cache == nil {
		return c.do(ctx, cl, out)
	}

	key := endpoint
	if query := encodeParams(cl.opts.params).Encode(); query != "" {
		key += "?" + query
	}

	resp, err := c.cache.fetch(ctx, key, func(ctx context.Context) (*resty.Response, error) {
		return c.execute(ctx, cl)
	})
	if err != nil {
		return nil, err
	}
	if err = decode(resp, out, cl.opts.responseType); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	_, err := c.do(ctx, call{method: http.MethodPost, endpoint: endpoint, body: body, opts: buildOptions(opts)}, out)
	return err
}

func (c *Client) PostWithEnvelope(ctx context.Context, endpoint string, body any, out Envelope, opts ...Option) error {
	return c.withEnvelope(ctx, call{method: http.MethodPost, endpoint: endpoint, body: body, opts: buildOptions(opts)}, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	_, err := c.do(ctx, call{method: http.MethodPut, endpoint: endpoint, body: body, opts: buildOptions(opts)}, out)
	return err
}

func (c *Client) PutWithEnvelope(ctx context.Context, endpoint string, body any, out Envelope, opts ...Option) error {
	return c.withEnvelope(ctx, call{method: http.MethodPut, endpoint: endpoint, body: body, opts: buildOptions(opts)}, out)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	_, err := c.do(ctx, call{method: http.MethodPatch, endpoint: endpoint, body: body, opts: buildOptions(opts)}, out)
	return err
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any, opts ...Option) error {
	_, err := c.do(ctx, call{method: http.MethodDelete, endpoint: endpoint, opts: buildOptions(opts)}, out)
	return err
}

func (c *Client) DeleteWithEnvelope(ctx context.Context, endpoint string, out Envelope, opts ...Option) error {
	return c.withEnvelope(ctx, call{method: http.MethodDelete, endpoint: endpoint, opts: buildOptions(opts)}, out)
}

func (c *Client) Upload(ctx context.Context, endpoint string, files []UploadFile, out any, opts ...Option) error {
	cl := call{
		method:   http.MethodPost,
		endpoint: endpoint,
		files:    files,
		opts:     buildOptions(opts),
		timeout:  2 * c.timeout,
	}
	_, err := c.do(ctx, cl, out)
	return err
}

func (c *Client) Download(ctx context.Context, endpoint, filename string, opts ...Option) (Downloaded, error) {
	cl := call{
		method:   http.MethodGet,
		endpoint: endpoint,
		opts:     buildOptions(append([]Option{WithResponseType(ResponseBlob)}, opts...)),
		timeout:  2 * c.timeout,
	}

	var data []byte
	resp, err := c.do(ctx, cl, &data)
	if err != nil {
		return Downloaded{}, err
	}

	result := Downloaded{Data: data, ContentType: resp.Header().Get("Content-Type")}
	if filename == "" {
		return result, nil
	}

	dir := c.downloadDir
	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return result, fmt.Errorf("create download dir: %w", err)
	}

	result.Path = filepath.Join(dir, filepath.Base(filename))
	if err = os.WriteFile(result.Path, data, 0o644); err != nil {
		return result, fmt.Errorf("save download: %w", err)
	}

	return result, nil
}

// ClearCache implements [HTTPClient].
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.clear()
	}
}
