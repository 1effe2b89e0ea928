package store

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// employeeRepository is the in-memory implementation of
// [EmployeeRepository]. Ids are decimal strings assigned in creation order.
type employeeRepository struct {
	mu        sync.RWMutex
	nextID    int64
	employees map[string]models.Employee
	logger    *logger.Logger
	now       func() time.Time
}

// NewEmployeeRepository constructs an [EmployeeRepository] holding seed.
// Seed records get ids and timestamps as if created one after another.
func NewEmployeeRepository(logger *logger.Logger, seed ...models.Employee) EmployeeRepository {
	logger.Debug().Int("seed", len(seed)).Msg("creating employee repository")

	r := &employeeRepository{
		nextID:    1,
		employees: make(map[string]models.Employee, len(seed)),
		logger:    logger,
		now:       time.Now,
	}
	for _, e := range seed {
		r.insert(e)
	}

	return r
}

func (r *employeeRepository) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, models.Pagination, error) {
	all, err := r.AllEmployees(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	pagination := models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(all),
		TotalPages: (len(all) + pageSize - 1) / pageSize,
	}

	start := min((page-1)*pageSize, len(all))
	end := min(start+pageSize, len(all))

	return all[start:end], pagination, nil
}

// AllEmployees returns every employee matching filter, sorted, without
// paging.
func (r *employeeRepository) AllEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	r.mu.RLock()
	matched := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if matchesFilter(e, filter) {
			matched = append(matched, e)
		}
	}
	r.mu.RUnlock()

	less := employeeOrder(filter.SortBy)
	slices.SortStableFunc(matched, func(a, b models.Employee) int {
		if c := less(a, b); c != 0 {
			return c
		}
		return cmp.Compare(idNumber(a.ID), idNumber(b.ID))
	})
	if strings.EqualFold(filter.SortOrder, "desc") {
		slices.Reverse(matched)
	}

	return matched, nil
}

func (r *employeeRepository) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(employee.Email, "") {
		return models.Employee{}, ErrEmployeeEmailTaken
	}

	return r.insert(employee), nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id string, update models.UpdateEmployee) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	if update.Email != nil && r.emailTaken(*update.Email, id) {
		return models.Employee{}, ErrEmployeeEmailTaken
	}

	applyUpdate(&e, update)
	e.UpdatedAt = r.now().UTC().Format(time.RFC3339)
	r.employees[id] = e

	return e, nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(r.employees, id)

	return nil
}

func (r *employeeRepository) Statistics(ctx context.Context) (models.EmployeeStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.EmployeeStatistics{ByDepartment: make(map[string]int)}
	for _, e := range r.employees {
		stats.Total++
		switch e.Status {
		case models.EmployeeActive:
			stats.Active++
		case models.EmployeeInactive:
			stats.Inactive++
		}
		if e.Department != "" {
			stats.ByDepartment[e.Department]++
		}
	}

	return stats, nil
}

// insert must be called with r.mu held for writing (or during construction).
func (r *employeeRepository) insert(e models.Employee) models.Employee {
	now := r.now().UTC().Format(time.RFC3339)

	e.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	if e.Status == "" {
		e.Status = models.EmployeeActive
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	r.employees[e.ID] = e

	return e
}

func (r *employeeRepository) emailTaken(email, exceptID string) bool {
	for id, e := range r.employees {
		if id != exceptID && strings.EqualFold(e.Email, email) {
			return true
		}
	}
	return false
}

func applyUpdate(e *models.Employee, u models.UpdateEmployee) {
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.HireDate != nil {
		e.HireDate = *u.HireDate
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.AvatarURL != nil {
		e.AvatarURL = *u.AvatarURL
	}
}

func matchesFilter(e models.Employee, f models.EmployeeFilter) bool {
	if f.Department != "" && !strings.EqualFold(e.Department, f.Department) {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)
	for _, field := range []string{e.FirstName, e.LastName, e.Email, e.Position, e.FirstName + " " + e.LastName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// employeeOrder returns the comparison for sortBy. Unknown fields sort by id.
func employeeOrder(sortBy string) func(a, b models.Employee) int {
	byString := func(get func(models.Employee) string) func(a, b models.Employee) int {
		return func(a, b models.Employee) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}

	switch sortBy {
	case "firstName":
		return byString(func(e models.Employee) string { return e.FirstName })
	case "lastName":
		return byString(func(e models.Employee) string { return e.LastName })
	case "email":
		return byString(func(e models.Employee) string { return e.Email })
	case "department":
		return byString(func(e models.Employee) string { return e.Department })
	case "position":
		return byString(func(e models.Employee) string { return e.Position })
	case "status":
		return byString(func(e models.Employee) string { return string(e.Status) })
	case "hireDate":
		return byString(func(e models.Employee) string { return e.HireDate })
	case "createdAt":
		return byString(func(e models.Employee) string { return e.CreatedAt })
	case "salary":
		return func(a, b models.Employee) int { return cmp.Compare(a.Salary, b.Salary) }
	default:
		return func(a, b models.Employee) int { return 0 }
	}
}

func idNumber(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}
