package client

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-hr-portal/models"
)

func (a *App) employees(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: employees needs a subcommand", ErrUsage)
	}

	sub, rest := args[0], args[1:]
	if err := a.requireAuth(ctx, "employees "+strings.Join(args, " ")); err != nil {
		return err
	}

	switch sub {
	case "list":
		return a.listEmployees(ctx, rest)
	case "get":
		return a.getEmployee(ctx, rest)
	case "create":
		return a.createEmployee(ctx, rest)
	case "update":
		return a.updateEmployee(ctx, rest)
	case "delete":
		return a.deleteEmployee(ctx, rest)
	case "stats":
		return a.employeeStatistics(ctx)
	case "export":
		return a.exportEmployees(ctx, rest)
	case "avatar":
		return a.uploadAvatar(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown employees subcommand %q", ErrUsage, sub)
	}
}

func (a *App) listEmployees(ctx context.Context, args []string) error {
	filter, err := a.parseFilter("employees list", args)
	if err != nil {
		return err
	}

	page, err := a.services.EmployeeService.GetAll(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(page)
}

func (a *App) getEmployee(ctx context.Context, args []string) error {
	id, err := singleID("employees get", args)
	if err != nil {
		return err
	}

	employee, err := a.services.EmployeeService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(employee)
}

func (a *App) createEmployee(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employees create")
	var create models.CreateEmployee
	fs.StringVar(&create.FirstName, "first-name", "", "first name")
	fs.StringVar(&create.LastName, "last-name", "", "last name")
	fs.StringVar(&create.Email, "email", "", "e-mail")
	fs.StringVar(&create.Phone, "phone", "", "phone")
	fs.StringVar(&create.Department, "department", "", "department")
	fs.StringVar(&create.Position, "position", "", "position")
	fs.StringVar(&create.HireDate, "hire-date", "", "hire date, YYYY-MM-DD")
	fs.Float64Var(&create.Salary, "salary", 0, "yearly salary")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	employee, err := a.services.EmployeeService.Create(ctx, create)
	if err != nil {
		return err
	}
	return a.printJSON(employee)
}

// updateEmployee sends only the flags that were given.
func (a *App) updateEmployee(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("%w: employees update needs an id", ErrUsage)
	}
	id := args[0]

	fs := a.newFlagSet("employees update")
	strs := map[string]*string{}
	for _, name := range []string{"first-name", "last-name", "email", "phone", "department", "position", "hire-date", "status"} {
		strs[name] = fs.String(name, "", name)
	}
	salary := fs.Float64("salary", 0, "yearly salary")
	if err := a.parse(fs, args[1:]); err != nil {
		return err
	}

	var update models.UpdateEmployee
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			update.FirstName = strs[f.Name]
		case "last-name":
			update.LastName = strs[f.Name]
		case "email":
			update.Email = strs[f.Name]
		case "phone":
			update.Phone = strs[f.Name]
		case "department":
			update.Department = strs[f.Name]
		case "position":
			update.Position = strs[f.Name]
		case "hire-date":
			update.HireDate = strs[f.Name]
		case "status":
			status := models.EmployeeStatus(*strs[f.Name])
			update.Status = &status
		case "salary":
			update.Salary = salary
		}
	})

	employee, err := a.services.EmployeeService.Update(ctx, id, update)
	if err != nil {
		return err
	}
	return a.printJSON(employee)
}

func (a *App) deleteEmployee(ctx context.Context, args []string) error {
	id, err := singleID("employees delete", args)
	if err != nil {
		return err
	}

	if err = a.services.EmployeeService.Delete(ctx, id); err != nil {
		return err
	}
	return a.printJSON(map[string]string{"deleted": id})
}

func (a *App) employeeStatistics(ctx context.Context) error {
	stats, err := a.services.EmployeeService.GetStatistics(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(stats)
}

type exportOutput struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

func (a *App) exportEmployees(ctx context.Context, args []string) error {
	filter, err := a.parseFilter("employees export", args)
	if err != nil {
		return err
	}

	downloaded, err := a.services.EmployeeService.ExportCSV(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(exportOutput{Path: downloaded.Path, Bytes: len(downloaded.Data)})
}

func (a *App) uploadAvatar(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: employees avatar needs an id and an image file", ErrUsage)
	}

	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close()

	avatar, err := a.services.EmployeeService.UploadAvatar(ctx, args[0], filepath.Base(args[1]), f)
	if err != nil {
		return err
	}
	return a.printJSON(avatar)
}

func (a *App) parseFilter(name string, args []string) (models.EmployeeFilter, error) {
	fs := a.newFlagSet(name)
	var filter models.EmployeeFilter
	var status string
	fs.IntVar(&filter.Page, "page", 0, "page number, from 1")
	fs.IntVar(&filter.PageSize, "page-size", 0, "items per page")
	fs.StringVar(&filter.Search, "search", "", "search in names, e-mail and position")
	fs.StringVar(&filter.Department, "department", "", "department")
	fs.StringVar(&status, "status", "", "active or inactive")
	fs.StringVar(&filter.SortBy, "sort-by", "", "field to sort by")
	fs.StringVar(&filter.SortOrder, "sort-order", "", "asc or desc")
	if err := a.parse(fs, args); err != nil {
		return models.EmployeeFilter{}, err
	}
	filter.Status = models.EmployeeStatus(status)

	return filter, nil
}

func singleID(command string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s needs exactly one id", ErrUsage, command)
	}
	return args[0], nil
}
