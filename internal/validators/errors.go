package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFirstName      = errors.New("firstName is required")
	ErrNoLastName       = errors.New("lastName is required")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
	ErrNegativeSalary   = errors.New("salary must not be negative")
	ErrInvalidHireDate  = errors.New("hireDate must be YYYY-MM-DD")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidPage      = errors.New("page must not be negative")
	ErrInvalidPageSize  = errors.New("pageSize must be between 0 and 100")
	ErrInvalidSortOrder = errors.New("sortOrder must be asc or desc")

	ErrEmptyAvatar      = errors.New("avatar file is empty")
	ErrAvatarNotAnImage = errors.New("avatar must be an image")
	ErrAvatarTooLarge   = errors.New("avatar must not exceed 5 MiB")

	ErrNoPassword    = errors.New("password is required")
	ErrShortPassword = errors.New("password must be at least 6 characters")
	ErrNoUsername    = errors.New("username is required")
)
