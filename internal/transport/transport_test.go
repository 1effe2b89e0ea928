package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/session"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type fakeNavigator struct {
	mu        sync.Mutex
	redirects []string
}

func (f *fakeNavigator) RedirectToLogin(_ context.Context, returnTo string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redirects = append(f.redirects, returnTo)
}

func (f *fakeNavigator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.redirects...)
}

// authServer issues access_token=<n> on refresh and only accepts the latest
// token on protected routes.
type authServer struct {
	*httptest.Server
	refreshes    atomic.Int32
	refreshFails atomic.Bool
	current      atomic.Int32
	hits         sync.Map // path -> *atomic.Int32
}

func newAuthServer(t *testing.T) *authServer {
	t.Helper()
	s := &authServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshes.Add(1)
		time.Sleep(20 * time.Millisecond)
		if s.refreshFails.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := s.current.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: tokenValue(n), Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid email or password"}`))
	})
	mux.HandleFunc("GET /forbidden", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		counter, _ := s.hits.LoadOrStore(r.URL.Path, new(atomic.Int32))
		counter.(*atomic.Int32).Add(1)

		c, err := r.Cookie("access_token")
		if err != nil || c.Value != tokenValue(s.current.Load()) || s.current.Load() == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "path": r.URL.Path, "echo": string(body)})
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *authServer) hitsOn(path string) int32 {
	v, ok := s.hits.Load(path)
	if !ok {
		return 0
	}
	return v.(*atomic.Int32).Load()
}

func tokenValue(n int32) string {
	return "token-" + string(rune('0'+n))
}

type harness struct {
	client  *http.Client
	manager *session.Manager
	nav     *fakeNavigator
	jar     http.CookieJar
}

func newHarness(t *testing.T, srv *authServer) *harness {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	nav := &fakeNavigator{}
	manager := session.NewManager(config.ClientSession{RefreshTimeout: 2 * time.Second}, nav, logger.Nop())

	client := &http.Client{Transport: Chain(Cookies(jar, http.DefaultTransport),
		Logging(true, logger.Nop()),
		Credentials(),
		Refresh(manager, logger.Nop()),
	)}

	manager.SetRefresher(func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/api/auth/refresh", nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return assert.AnError
		}
		return nil
	})

	return &harness{client: client, manager: manager, nav: nav, jar: jar}
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// ── Chain / Credentials ───────────────────────────────────────────────────────

func TestChain_FirstInterceptorIsOutermost(t *testing.T) {
	var order []string
	tag := func(name string) Interceptor {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}
	base := RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})

	rt := Chain(base, tag("logging"), tag("credentials"), tag("refresh"))
	req := httptest.NewRequest(http.MethodGet, "http://hr.local/employees", nil)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"logging", "credentials", "refresh", "base"}, order)
}

func TestCredentials_AlwaysMarksRequest(t *testing.T) {
	var seen []bool
	base := RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = append(seen, HasCredentials(r.Context()))
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})
	rt := Chain(base, Credentials())

	for _, ctx := range []context.Context{context.Background(), WithCredentials(context.Background())} {
		req := httptest.NewRequest(http.MethodGet, "http://hr.local/", nil).WithContext(ctx)
		_, err := rt.RoundTrip(req)
		require.NoError(t, err)
	}

	assert.Equal(t, []bool{true, true}, seen)
}

// ── Cookies ───────────────────────────────────────────────────────────────────

func TestCookies_AttachesAndStores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("sid"); err == nil {
			_, _ = w.Write([]byte(c.Value))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s1", Path: "/"})
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Transport: Chain(Cookies(jar, nil), Credentials())}

	_, body := get(t, client, srv.URL+"/login")
	assert.Empty(t, body)
	_, body = get(t, client, srv.URL+"/me")
	assert.Equal(t, "s1", body)
}

func TestCookies_UncredentialedPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Cookies())
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s1", Path: "/"})
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Transport: Cookies(jar, nil)}

	get(t, client, srv.URL+"/")
	assert.Empty(t, jar.Cookies(mustURL(t, srv.URL)))
}

// ── Logging ───────────────────────────────────────────────────────────────────

func TestLogging_AssignsRequestIDAndLogs(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	client := &http.Client{Transport: Chain(nil, Logging(true, log))}

	get(t, client, srv.URL+"/employees/9")

	require.NotEmpty(t, gotID)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, gotID, entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, float64(404), entry["status"])
	assert.Contains(t, entry, "duration")
}

func TestLogging_Disabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(RequestIDHeader))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	client := &http.Client{Transport: Chain(nil, Logging(false, &logger.Logger{Logger: zerolog.New(&buf)}))}
	get(t, client, srv.URL)
	assert.Zero(t, buf.Len())
}

// ── Refresh ───────────────────────────────────────────────────────────────────

// TestRefresh_ReplaysOnceAfterRefresh covers GET /employees/5 → 401 →
// refresh → replay → 200.
func TestRefresh_ReplaysOnceAfterRefresh(t *testing.T) {
	srv := newAuthServer(t)
	h := newHarness(t, srv)

	resp, body := get(t, h.client, srv.URL+"/employees/5")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"path":"/employees/5"`)
	assert.Equal(t, int32(1), srv.refreshes.Load())
	assert.Equal(t, int32(2), srv.hitsOn("/employees/5"))
	assert.Equal(t, uint64(1), h.manager.Generation())
	assert.Empty(t, h.nav.calls())
}

func TestRefresh_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	srv := newAuthServer(t)
	h := newHarness(t, srv)

	var wg sync.WaitGroup
	statuses := make(chan int, 6)
	for i := range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := h.client.Get(srv.URL + "/employees/" + string(rune('0'+i)))
			if !assert.NoError(t, err) {
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}
	assert.Equal(t, int32(1), srv.refreshes.Load())
}

func TestRefresh_ReplaysRequestBody(t *testing.T) {
	srv := newAuthServer(t)
	h := newHarness(t, srv)

	// a body without GetBody must still be replayable
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/employees", io.NopCloser(strings.NewReader(`{"firstName":"Ada"}`)))
	require.NoError(t, err)
	require.Nil(t, req.GetBody)

	resp, err := h.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `{\"firstName\":\"Ada\"}`)
}

// TestRefresh_RefreshUnauthorizedTearsDown verifies that a 401 on the
// refresh call expires the session once, without a nested refresh, and the
// caller gets the original 401.
func TestRefresh_RefreshUnauthorizedTearsDown(t *testing.T) {
	srv := newAuthServer(t)
	srv.refreshFails.Store(true)
	h := newHarness(t, srv)

	var cleared atomic.Int32
	h.manager.OnExpired(func(ctx context.Context) { cleared.Add(1) })

	resp, body := get(t, h.client, srv.URL+"/employees/5?tab=info")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "token expired")
	assert.Equal(t, int32(1), srv.refreshes.Load())
	assert.Equal(t, int32(1), srv.hitsOn("/employees/5"))
	assert.Equal(t, int32(1), cleared.Load())
	assert.Equal(t, []string{"/employees/5?tab=info"}, h.nav.calls())
	assert.True(t, h.manager.Expired())
}

func TestRefresh_ReturnTargetFromContext(t *testing.T) {
	srv := newAuthServer(t)
	srv.refreshFails.Store(true)
	h := newHarness(t, srv)

	ctx := session.WithReturnTo(context.Background(), "employees get 5")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/employees/5", nil)
	require.NoError(t, err)
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"employees get 5"}, h.nav.calls())
}

func TestRefresh_LoginUnauthorizedPassesThrough(t *testing.T) {
	srv := newAuthServer(t)
	h := newHarness(t, srv)

	resp, err := h.client.Post(srv.URL+"/api/auth/login", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "Invalid email or password")
	assert.Zero(t, srv.refreshes.Load())
	assert.Empty(t, h.nav.calls())
}

func TestRefresh_ForbiddenNotRecovered(t *testing.T) {
	srv := newAuthServer(t)
	h := newHarness(t, srv)

	resp, _ := get(t, h.client, srv.URL+"/forbidden")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, srv.refreshes.Load())
}

// TestRefresh_StaleRequestSkipsRefresh verifies that a 401 for a request
// sent before a completed refresh replays without refreshing again.
func TestRefresh_StaleRequestSkipsRefresh(t *testing.T) {
	var refreshes atomic.Int32
	sm := &stubRefresher{gen: 0}

	calls := 0
	base := RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			// a refresh finished while this request was in flight
			sm.gen = 1
			return &http.Response{StatusCode: http.StatusUnauthorized, Body: http.NoBody, Request: r}, nil
		}
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})
	sm.refresh = func() error { refreshes.Add(1); return nil }

	rt := Chain(base, Refresh(sm, logger.Nop()))
	resp, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://hr.local/employees", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, calls)
	assert.Zero(t, refreshes.Load())
}

type stubRefresher struct {
	gen     uint64
	refresh func() error
}

func (s *stubRefresher) Generation() uint64 { return s.gen }

func (s *stubRefresher) RefreshSince(_ context.Context, seen uint64) error {
	if s.gen > seen {
		return nil
	}
	return s.refresh()
}

func (s *stubRefresher) Expire(context.Context, string) {}
