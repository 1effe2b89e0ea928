package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/models"
)

// Services groups the business logic of the development API server.
type Services struct {
	AuthService     ServerAuthService
	TokenService    TokenService
	EmployeeService ServerEmployeeService
}

func NewServices(storages *store.Storages, cfg config.ServerAuth, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionRepository, tokens, cfg, logger),
		TokenService:    tokens,
		EmployeeService: NewEmployeeValidationService().Wrap(NewEmployeeService(storages.EmployeeRepository, storages.AvatarStorage, logger)),
	}
}

// DemoAccount is registered by [SeedDemoAccount] so the development server
// can be used right away.
var DemoAccount = models.Registration{
	Email:    "demo@hr-portal.local",
	Username: "demo",
	Password: "demo1234",
}

// SeedDemoAccount registers [DemoAccount].
func SeedDemoAccount(ctx context.Context, auth ServerAuthService) error {
	if _, err := auth.Register(ctx, DemoAccount); err != nil {
		return fmt.Errorf("seed demo account: %w", err)
	}
	return nil
}

// DemoEmployees is the initial employee directory of the development
// server.
func DemoEmployees() []models.Employee {
	return []models.Employee{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@hr-portal.local", Department: "Engineering", Position: "Principal Engineer", HireDate: "2019-04-01", Salary: 185000, Status: models.EmployeeActive},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@hr-portal.local", Department: "Engineering", Position: "Engineering Manager", HireDate: "2017-09-15", Salary: 175000, Status: models.EmployeeActive},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@hr-portal.local", Department: "Research", Position: "Research Scientist", HireDate: "2020-01-20", Salary: 160000, Status: models.EmployeeActive},
		{FirstName: "Katherine", LastName: "Johnson", Email: "katherine@hr-portal.local", Department: "Research", Position: "Analyst", HireDate: "2018-06-11", Salary: 120000, Status: models.EmployeeInactive},
		{FirstName: "Edsger", LastName: "Dijkstra", Email: "edsger@hr-portal.local", Department: "Engineering", Position: "Staff Engineer", HireDate: "2021-02-03", Salary: 150000, Status: models.EmployeeActive},
		{FirstName: "Barbara", LastName: "Liskov", Email: "barbara@hr-portal.local", Department: "People", Position: "HR Partner", HireDate: "2016-11-28", Salary: 110000, Status: models.EmployeeActive},
	}
}
