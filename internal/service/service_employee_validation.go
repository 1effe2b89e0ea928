package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-hr-portal/internal/validators"
	"github.com/MKhiriev/go-hr-portal/models"
)

// EmployeeValidationService rejects malformed input before it reaches the
// wrapped service. Rejections wrap ErrInvalidDataProvided.
type EmployeeValidationService struct {
	inner     ServerEmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() ServerEmployeeServiceWrapper {
	return &EmployeeValidationService{
		validator: validators.NewEmployeeValidator(),
	}
}

func (v *EmployeeValidationService) Wrap(inner ServerEmployeeService) ServerEmployeeService {
	v.inner = inner
	return v
}

func (v *EmployeeValidationService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, models.Pagination, error) {
	if err := v.validate(ctx, filter); err != nil {
		return nil, models.Pagination{}, err
	}
	return v.inner.List(ctx, filter)
}

func (v *EmployeeValidationService) Get(ctx context.Context, id string) (models.Employee, error) {
	return v.inner.Get(ctx, id)
}

func (v *EmployeeValidationService) Create(ctx context.Context, employee models.CreateEmployee) (models.Employee, error) {
	if err := v.validate(ctx, employee); err != nil {
		return models.Employee{}, err
	}
	return v.inner.Create(ctx, employee)
}

func (v *EmployeeValidationService) Update(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error) {
	if err := v.validate(ctx, update); err != nil {
		return models.Employee{}, err
	}
	return v.inner.Update(ctx, id, update)
}

func (v *EmployeeValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *EmployeeValidationService) Statistics(ctx context.Context) (models.EmployeeStatistics, error) {
	return v.inner.Statistics(ctx)
}

func (v *EmployeeValidationService) ExportCSV(ctx context.Context, filter models.EmployeeFilter, w io.Writer) error {
	if err := v.validate(ctx, filter, validators.FieldStatus, validators.FieldSortOrder); err != nil {
		return err
	}
	return v.inner.ExportCSV(ctx, filter, w)
}

func (v *EmployeeValidationService) SaveAvatar(ctx context.Context, avatar models.AvatarFile) (models.Avatar, error) {
	if err := v.validate(ctx, avatar); err != nil {
		return models.Avatar{}, err
	}
	return v.inner.SaveAvatar(ctx, avatar)
}

func (v *EmployeeValidationService) Avatar(ctx context.Context, employeeID string) (models.AvatarFile, error) {
	return v.inner.Avatar(ctx, employeeID)
}

func (v *EmployeeValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
