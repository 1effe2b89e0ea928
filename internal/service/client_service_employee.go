package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-hr-portal/internal/adapter"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

const (
	employeesEndpoint = "employees"
	exportFilename    = "employees.csv"
	avatarField       = "avatar"
)

type clientEmployeeService struct {
	client adapter.HTTPClient
	logger *logger.Logger
}

func NewClientEmployeeService(client adapter.HTTPClient, logger *logger.Logger) EmployeeService {
	return &clientEmployeeService{client: client, logger: logger}
}

func (e *clientEmployeeService) GetAll(ctx context.Context, filter models.EmployeeFilter) (models.Paginated[models.Employee], error) {
	var page models.Paginated[models.Employee]
	if err := e.client.GetPaginated(ctx, employeesEndpoint, filter.QueryParams(), &page); err != nil {
		return models.Paginated[models.Employee]{}, fmt.Errorf("list employees: %w", err)
	}
	return page, nil
}

func (e *clientEmployeeService) GetByID(ctx context.Context, id string) (models.Employee, error) {
	endpoint, err := employeeEndpoint(id)
	if err != nil {
		return models.Employee{}, err
	}

	var resp models.Envelope[models.Employee]
	if err = e.client.GetWithEnvelope(ctx, endpoint, &resp); err != nil {
		return models.Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}
	return resp.Data, nil
}

func (e *clientEmployeeService) Create(ctx context.Context, employee models.CreateEmployee) (models.Employee, error) {
	var resp models.Envelope[models.Employee]
	if err := e.client.PostWithEnvelope(ctx, employeesEndpoint, employee, &resp); err != nil {
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return resp.Data, nil
}

func (e *clientEmployeeService) Update(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error) {
	endpoint, err := employeeEndpoint(id)
	if err != nil {
		return models.Employee{}, err
	}

	var resp models.Envelope[models.Employee]
	if err = e.client.PutWithEnvelope(ctx, endpoint, update, &resp); err != nil {
		return models.Employee{}, fmt.Errorf("update employee %s: %w", id, err)
	}
	return resp.Data, nil
}

func (e *clientEmployeeService) Delete(ctx context.Context, id string) error {
	endpoint, err := employeeEndpoint(id)
	if err != nil {
		return err
	}

	var resp models.Envelope[struct{}]
	if err = e.client.DeleteWithEnvelope(ctx, endpoint, &resp); err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}
	return nil
}

func (e *clientEmployeeService) GetStatistics(ctx context.Context) (models.EmployeeStatistics, error) {
	var resp models.Envelope[models.EmployeeStatistics]
	if _, err := e.client.GetCached(ctx, employeesEndpoint+"/statistics", &resp); err != nil {
		return models.EmployeeStatistics{}, fmt.Errorf("employee statistics: %w", err)
	}
	if !resp.OK() {
		return models.EmployeeStatistics{}, &adapter.EnvelopeError{Message: envelopeMessage(resp)}
	}
	return resp.Data, nil
}

func (e *clientEmployeeService) ExportCSV(ctx context.Context, filter models.EmployeeFilter) (adapter.Downloaded, error) {
	file, err := e.client.Download(ctx, employeesEndpoint+"/export", exportFilename,
		adapter.WithParams(filter.QueryParams()))
	if err != nil {
		return adapter.Downloaded{}, fmt.Errorf("export employees: %w", err)
	}

	e.logger.Debug().Str("path", file.Path).Int("bytes", len(file.Data)).Msg("employees exported")
	return file, nil
}

func (e *clientEmployeeService) UploadAvatar(ctx context.Context, id, filename string, image io.Reader) (models.Avatar, error) {
	endpoint, err := employeeEndpoint(id)
	if err != nil {
		return models.Avatar{}, err
	}

	var resp models.Envelope[models.Avatar]
	files := []adapter.UploadFile{{Field: avatarField, Name: filename, Reader: image}}
	if err = e.client.Upload(ctx, endpoint+"/avatar", files, &resp); err != nil {
		return models.Avatar{}, fmt.Errorf("upload avatar for %s: %w", id, err)
	}
	if !resp.OK() {
		return models.Avatar{}, &adapter.EnvelopeError{Message: envelopeMessage(resp)}
	}
	return resp.Data, nil
}

func employeeEndpoint(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyEmployeeID
	}
	return employeesEndpoint + "/" + url.PathEscape(id), nil
}

func envelopeMessage(env adapter.Envelope) string {
	if msg := env.ErrorMessage(); msg != "" {
		return msg
	}
	return "API request failed"
}
