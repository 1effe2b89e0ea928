package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserStateNotFound is returned when no user record is cached locally.
	ErrUserStateNotFound = errors.New("cached user was not found")

	// ErrCorruptUserState is returned when the cached user record cannot be
	// decoded.
	ErrCorruptUserState = errors.New("cached user is corrupt")

	// ErrEmailAlreadyExists is returned when registering an e-mail that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a refresh token is unknown.
	ErrSessionNotFound = errors.New("refresh session was not found")

	// ErrEmployeeNotFound is returned when no employee has the requested id.
	ErrEmployeeNotFound = errors.New("employee was not found")

	// ErrEmployeeEmailTaken is returned when another employee already uses
	// the e-mail.
	ErrEmployeeEmailTaken = errors.New("employee email already exists")

	// ErrAvatarNotFound is returned when an employee has no uploaded avatar.
	ErrAvatarNotFound = errors.New("avatar was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
