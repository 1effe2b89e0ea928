// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	clientStateTable = "client_state"
	cookiesTable     = "cookies"

	// userStateKey is the client_state key of the cached user record.
	userStateKey = "user"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectStateQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(clientStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertStateQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(clientStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(clientStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSelectCookiesQuery() (string, []any, error) {
	return sqlite.
		Select("origin", "name", "path", "value", "expires", "secure", "http_only").
		From(cookiesTable).
		OrderBy("origin", "name").
		ToSql()
}

func buildUpsertCookieQuery(c StoredCookie) (string, []any, error) {
	return sqlite.
		Insert(cookiesTable).
		Columns("origin", "name", "path", "value", "expires", "secure", "http_only").
		Values(c.Origin, c.Name, c.Path, c.Value, c.expiresUnix(), c.Secure, c.HTTPOnly).
		Suffix("ON CONFLICT(origin, name, path) DO UPDATE SET " +
			"value = excluded.value, expires = excluded.expires, " +
			"secure = excluded.secure, http_only = excluded.http_only").
		ToSql()
}

func buildDeleteCookieQuery(origin, name, path string) (string, []any, error) {
	return sqlite.
		Delete(cookiesTable).
		Where(sq.Eq{"origin": origin, "name": name, "path": path}).
		ToSql()
}

func buildDeleteAllCookiesQuery() (string, []any, error) {
	return sqlite.Delete(cookiesTable).ToSql()
}
