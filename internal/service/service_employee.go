package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/models"
)

var exportHeader = []string{
	"id", "firstName", "lastName", "email", "phone", "department",
	"position", "hireDate", "salary", "status",
}

type employeeService struct {
	employees store.EmployeeRepository
	avatars   store.AvatarFileStorage

	logger *logger.Logger
}

func NewEmployeeService(employees store.EmployeeRepository, avatars store.AvatarFileStorage, logger *logger.Logger) ServerEmployeeService {
	return &employeeService{
		employees: employees,
		avatars:   avatars,
		logger:    logger,
	}
}

func (e *employeeService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, models.Pagination, error) {
	return e.employees.ListEmployees(ctx, filter)
}

func (e *employeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	return e.employees.GetEmployee(ctx, id)
}

func (e *employeeService) Create(ctx context.Context, employee models.CreateEmployee) (models.Employee, error) {
	return e.employees.CreateEmployee(ctx, models.Employee{
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Phone:      employee.Phone,
		Department: employee.Department,
		Position:   employee.Position,
		HireDate:   employee.HireDate,
		Salary:     employee.Salary,
		Status:     models.EmployeeActive,
	})
}

func (e *employeeService) Update(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error) {
	// the avatar url is owned by SaveAvatar
	update.AvatarURL = nil
	return e.employees.UpdateEmployee(ctx, id, update)
}

func (e *employeeService) Delete(ctx context.Context, id string) error {
	if err := e.employees.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	if err := e.avatars.DeleteAvatar(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("employee_id", id).Msg("failed to delete avatar")
	}
	return nil
}

func (e *employeeService) Statistics(ctx context.Context) (models.EmployeeStatistics, error) {
	return e.employees.Statistics(ctx)
}

func (e *employeeService) ExportCSV(ctx context.Context, filter models.EmployeeFilter, w io.Writer) error {
	employees, err := e.employees.AllEmployees(ctx, filter)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, emp := range employees {
		record := []string{
			emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Department,
			emp.Position, emp.HireDate, strconv.FormatFloat(emp.Salary, 'f', -1, 64), string(emp.Status),
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %s: %w", emp.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveAvatar stores the image and points the employee's avatarUrl at it.
func (e *employeeService) SaveAvatar(ctx context.Context, avatar models.AvatarFile) (models.Avatar, error) {
	if _, err := e.employees.GetEmployee(ctx, avatar.EmployeeID); err != nil {
		return models.Avatar{}, err
	}

	if err := e.avatars.SaveAvatar(ctx, avatar); err != nil {
		return models.Avatar{}, fmt.Errorf("save avatar: %w", err)
	}

	url := "/employees/" + avatar.EmployeeID + "/avatar"
	if _, err := e.employees.UpdateEmployee(ctx, avatar.EmployeeID, models.UpdateEmployee{AvatarURL: &url}); err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			// deleted concurrently
			_ = e.avatars.DeleteAvatar(ctx, avatar.EmployeeID)
		}
		return models.Avatar{}, err
	}

	return models.Avatar{URL: url}, nil
}

func (e *employeeService) Avatar(ctx context.Context, employeeID string) (models.AvatarFile, error) {
	return e.avatars.LoadAvatar(ctx, employeeID)
}
