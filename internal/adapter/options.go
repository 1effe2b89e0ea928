package adapter

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"

	"github.com/MKhiriev/go-hr-portal/models"
)

// ResponseType selects how a response body is handed back.
type ResponseType string

const (
	ResponseJSON ResponseType = "json"
	ResponseText ResponseType = "text"
	ResponseBlob ResponseType = "blob"
)

func (t ResponseType) accept() string {
	switch t {
	case ResponseText:
		return "text/plain"
	case ResponseBlob:
		return "*/*"
	default:
		return "application/json"
	}
}

// Option customizes a single request.
type Option func(*requestOptions)

type requestOptions struct {
	headers      map[string]string
	params       models.QueryParams
	responseType ResponseType
	credentials  bool
}

// WithHeader sets a header on the request, replacing a default one.
func WithHeader(key, value string) Option {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithParams adds query parameters. Later options override earlier keys.
func WithParams(params models.QueryParams) Option {
	return func(o *requestOptions) {
		maps.Copy(o.params, params)
	}
}

// WithResponseType sets the expected body type. JSON is the default.
func WithResponseType(t ResponseType) Option {
	return func(o *requestOptions) {
		o.responseType = t
	}
}

// WithCredentials asks for the session cookies to be sent. The credentials
// interceptor enables this for every request anyway.
func WithCredentials() Option {
	return func(o *requestOptions) {
		o.credentials = true
	}
}

func buildOptions(opts []Option) requestOptions {
	o := requestOptions{
		headers:      map[string]string{},
		params:       models.QueryParams{},
		responseType: ResponseJSON,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// encodeParams turns params into query values: nil values are skipped,
// slices and arrays become repeated keys and every other value is formatted
// with fmt.
func encodeParams(params models.QueryParams) url.Values {
	values := url.Values{}
	for key, raw := range params {
		if raw == nil {
			continue
		}

		v := reflect.ValueOf(raw)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range v.Len() {
				values.Add(key, fmt.Sprint(v.Index(i).Interface()))
			}
		default:
			values.Set(key, fmt.Sprint(v.Interface()))
		}
	}
	return values
}
