package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// StoredCookie is a cookie row of the local database. Origin is the
// scheme://host the cookie was received from.
type StoredCookie struct {
	Origin   string
	Name     string
	Path     string
	Value    string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
}

// Session reports whether the cookie has no expiry of its own.
func (c StoredCookie) Session() bool {
	return c.Expires.IsZero()
}

// Expired reports whether the cookie is past its expiry at now.
func (c StoredCookie) Expired(now time.Time) bool {
	return !c.Session() && !now.Before(c.Expires)
}

// HTTPCookie converts the row back into a cookie a jar accepts.
func (c StoredCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HTTPOnly,
	}
}

func (c StoredCookie) expiresUnix() int64 {
	if c.Session() {
		return 0
	}
	return c.Expires.Unix()
}

type cookieRepository struct {
	*DB
	logger *logger.Logger
}

func NewCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	return &cookieRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cookieRepository) LoadCookies(ctx context.Context) ([]StoredCookie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCookiesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cookieRepository.LoadCookies").Msg("failed to query cookies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cookies []StoredCookie
	for rows.Next() {
		var (
			cookie  StoredCookie
			expires int64
		)
		if err = rows.Scan(
			&cookie.Origin,
			&cookie.Name,
			&cookie.Path,
			&cookie.Value,
			&expires,
			&cookie.Secure,
			&cookie.HTTPOnly,
		); err != nil {
			log.Err(err).Str("func", "cookieRepository.LoadCookies").Msg("failed to scan cookie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if expires > 0 {
			cookie.Expires = time.Unix(expires, 0)
		}
		cookies = append(cookies, cookie)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "cookieRepository.LoadCookies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cookies, nil
}

func (c *cookieRepository) SaveCookie(ctx context.Context, cookie StoredCookie) error {
	query, args, err := buildUpsertCookieQuery(cookie)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cookieRepository.SaveCookie").
			Str("origin", cookie.Origin).
			Str("name", cookie.Name).
			Msg("failed to save cookie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *cookieRepository) DeleteCookie(ctx context.Context, origin, name, path string) error {
	query, args, err := buildDeleteCookieQuery(origin, name, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *cookieRepository) DeleteAllCookies(ctx context.Context) error {
	query, args, err := buildDeleteAllCookiesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
