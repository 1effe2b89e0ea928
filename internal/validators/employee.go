package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-hr-portal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldStatus    = "status"
	FieldSalary    = "salary"
	FieldHireDate  = "hire_date"

	// FieldAnyUpdate requires an update to change at least one field.
	FieldAnyUpdate = "any_update"

	FieldPage      = "page"
	FieldPageSize  = "page_size"
	FieldSortOrder = "sort_order"

	FieldAvatarData = "avatar_data"
	FieldAvatarType = "avatar_type"

	FieldPassword      = "password"
	FieldPasswordRules = "password_rules"
	FieldUsername      = "username"
)

const (
	hireDateLayout    = "2006-01-02"
	maxPageSize       = 100
	maxAvatarSize     = 5 << 20
	minPasswordLength = 6
)

// EmployeeValidator checks employee directory and account input of the
// development API server.
type EmployeeValidator struct{}

func NewEmployeeValidator() Validator {
	return &EmployeeValidator{}
}

func (v *EmployeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEmployee:
		return v.validateCreate(value, fields...)
	case *models.CreateEmployee:
		return v.validateCreate(*value, fields...)

	case models.UpdateEmployee:
		return v.validateUpdate(value, fields...)
	case *models.UpdateEmployee:
		return v.validateUpdate(*value, fields...)

	case models.EmployeeFilter:
		return v.validateFilter(value, fields...)
	case *models.EmployeeFilter:
		return v.validateFilter(*value, fields...)

	case models.AvatarFile:
		return v.validateAvatar(value, fields...)
	case *models.AvatarFile:
		return v.validateAvatar(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmployeeValidator) validateCreate(e models.CreateEmployee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldSalary, FieldHireDate}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(e.FirstName) == "" {
				return ErrNoFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(e.LastName) == "" {
				return ErrNoLastName
			}
		case FieldEmail:
			if !validEmail(e.Email) {
				return ErrInvalidEmail
			}
		case FieldSalary:
			if e.Salary < 0 {
				return ErrNegativeSalary
			}
		case FieldHireDate:
			if e.HireDate != "" && !validDate(e.HireDate) {
				return ErrInvalidHireDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate only checks the fields the update sets.
func (v *EmployeeValidator) validateUpdate(u models.UpdateEmployee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldFirstName, FieldLastName, FieldEmail, FieldStatus, FieldSalary, FieldHireDate}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if u == (models.UpdateEmployee{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if u.FirstName != nil && strings.TrimSpace(*u.FirstName) == "" {
				return ErrNoFirstName
			}
		case FieldLastName:
			if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
				return ErrNoLastName
			}
		case FieldEmail:
			if u.Email != nil && !validEmail(*u.Email) {
				return ErrInvalidEmail
			}
		case FieldStatus:
			if u.Status != nil && !validStatus(*u.Status) {
				return ErrInvalidStatus
			}
		case FieldSalary:
			if u.Salary != nil && *u.Salary < 0 {
				return ErrNegativeSalary
			}
		case FieldHireDate:
			if u.HireDate != nil && *u.HireDate != "" && !validDate(*u.HireDate) {
				return ErrInvalidHireDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateFilter(f models.EmployeeFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPageSize, FieldStatus, FieldSortOrder}
	}

	for _, field := range fields {
		switch field {
		case FieldPage:
			if f.Page < 0 {
				return ErrInvalidPage
			}
		case FieldPageSize:
			if f.PageSize < 0 || f.PageSize > maxPageSize {
				return ErrInvalidPageSize
			}
		case FieldStatus:
			if f.Status != "" && !validStatus(f.Status) {
				return ErrInvalidStatus
			}
		case FieldSortOrder:
			switch strings.ToLower(f.SortOrder) {
			case "", "asc", "desc":
			default:
				return ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateAvatar(a models.AvatarFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAvatarData, FieldAvatarType}
	}

	for _, f := range fields {
		switch f {
		case FieldAvatarData:
			if len(a.Data) == 0 {
				return ErrEmptyAvatar
			}
			if len(a.Data) > maxAvatarSize {
				return ErrAvatarTooLarge
			}
		case FieldAvatarType:
			if !strings.HasPrefix(a.ContentType, "image/") {
				return ErrAvatarNotAnImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrNoPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmployeeValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPasswordRules}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if strings.TrimSpace(r.Username) == "" {
				return ErrNoUsername
			}
		case FieldPasswordRules:
			if len(r.Password) < minPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validDate(s string) bool {
	_, err := time.Parse(hireDateLayout, s)
	return err == nil
}

func validStatus(s models.EmployeeStatus) bool {
	return s == models.EmployeeActive || s == models.EmployeeInactive
}
