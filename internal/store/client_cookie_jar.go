package store

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// PersistentJar is an [http.CookieJar] that keeps cookies in memory and
// mirrors every change into a [CookieRepository], so a session outlives the
// process that obtained it.
type PersistentJar struct {
	mu     sync.RWMutex
	jar    *cookiejar.Jar
	repo   CookieRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewPersistentJar builds the jar and restores every unexpired stored
// cookie. Expired rows are removed while loading.
func NewPersistentJar(ctx context.Context, repo CookieRepository, logger *logger.Logger) (*PersistentJar, error) {
	jar, err := newCookieJar()
	if err != nil {
		return nil, err
	}

	p := &PersistentJar{
		jar:    jar,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}

	stored, err := repo.LoadCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading cookies: %w", err)
	}

	now := p.now()
	for _, c := range stored {
		if c.Expired(now) {
			if err = repo.DeleteCookie(ctx, c.Origin, c.Name, c.Path); err != nil {
				logger.Warn().Err(err).Str("name", c.Name).Msg("failed to drop expired cookie")
			}
			continue
		}

		u, err := url.Parse(c.Origin)
		if err != nil {
			logger.Warn().Err(err).Str("origin", c.Origin).Msg("skipping cookie with invalid origin")
			continue
		}
		p.jar.SetCookies(u, []*http.Cookie{c.HTTPCookie()})
	}

	return p, nil
}

func newCookieJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}
	return jar, nil
}

// Cookies implements [http.CookieJar].
func (p *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.jar.Cookies(u)
}

// SetCookies implements [http.CookieJar]. Storage failures are logged, the
// in-memory jar is always updated.
func (p *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	p.mu.RLock()
	p.jar.SetCookies(u, cookies)
	p.mu.RUnlock()

	ctx := context.Background()
	origin := u.Scheme + "://" + u.Host
	now := p.now()

	for _, c := range cookies {
		stored := toStoredCookie(origin, c, now)

		var err error
		if stored.Expired(now) {
			err = p.repo.DeleteCookie(ctx, stored.Origin, stored.Name, stored.Path)
		} else {
			err = p.repo.SaveCookie(ctx, stored)
		}
		if err != nil {
			p.logger.Err(err).
				Str("func", "PersistentJar.SetCookies").
				Str("name", c.Name).
				Msg("failed to persist cookie")
		}
	}
}

// Clear forgets every cookie, in memory and in storage.
func (p *PersistentJar) Clear(ctx context.Context) error {
	jar, err := newCookieJar()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.jar = jar
	p.mu.Unlock()

	return p.repo.DeleteAllCookies(ctx)
}

func toStoredCookie(origin string, c *http.Cookie, now time.Time) StoredCookie {
	path := c.Path
	if path == "" {
		path = "/"
	}

	stored := StoredCookie{
		Origin:   origin,
		Name:     c.Name,
		Path:     path,
		Value:    c.Value,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
	}

	switch {
	case c.MaxAge < 0:
		stored.Expires = now
	case c.MaxAge > 0:
		stored.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		stored.Expires = c.Expires
	}

	return stored
}
