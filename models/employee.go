// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EmployeeStatus is the employment state of an [Employee].
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee is a record of the employee directory.
type Employee struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Department string         `json:"department,omitempty"`
	Position   string         `json:"position,omitempty"`
	HireDate   string         `json:"hireDate,omitempty"`
	Salary     float64        `json:"salary,omitempty"`
	Status     EmployeeStatus `json:"status"`
	AvatarURL  string         `json:"avatarUrl,omitempty"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	UpdatedAt  string         `json:"updatedAt,omitempty"`
}

// CreateEmployee is the body of POST /employees.
type CreateEmployee struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Department string  `json:"department,omitempty"`
	Position   string  `json:"position,omitempty"`
	HireDate   string  `json:"hireDate,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}

// UpdateEmployee is the body of PUT /employees/{id}. Nil fields are left
// untouched by the server.
type UpdateEmployee struct {
	FirstName  *string         `json:"firstName,omitempty"`
	LastName   *string         `json:"lastName,omitempty"`
	Email      *string         `json:"email,omitempty"`
	Phone      *string         `json:"phone,omitempty"`
	Department *string         `json:"department,omitempty"`
	Position   *string         `json:"position,omitempty"`
	HireDate   *string         `json:"hireDate,omitempty"`
	Salary     *float64        `json:"salary,omitempty"`
	Status     *EmployeeStatus `json:"status,omitempty"`
	AvatarURL  *string         `json:"avatarUrl,omitempty"`
}

// EmployeeFilter narrows GET /employees.
type EmployeeFilter struct {
	Page       int
	PageSize   int
	Search     string
	Department string
	Status     EmployeeStatus
	SortBy     string
	SortOrder  string
}

// QueryParams converts the filter into query parameters, omitting zero
// values.
func (f EmployeeFilter) QueryParams() QueryParams {
	params := QueryParams{}
	if f.Page > 0 {
		params["page"] = f.Page
	}
	if f.PageSize > 0 {
		params["pageSize"] = f.PageSize
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.Department != "" {
		params["department"] = f.Department
	}
	if f.Status != "" {
		params["status"] = string(f.Status)
	}
	if f.SortBy != "" {
		params["sortBy"] = f.SortBy
	}
	if f.SortOrder != "" {
		params["sortOrder"] = f.SortOrder
	}
	return params
}

// EmployeeStatistics is the data of GET /employees/statistics.
type EmployeeStatistics struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	ByDepartment map[string]int `json:"byDepartment"`
}

// Avatar is the data of POST /employees/{id}/avatar.
type Avatar struct {
	URL string `json:"url"`
}

// AvatarFile is an uploaded avatar image kept by the development API server.
type AvatarFile struct {
	EmployeeID  string
	ContentType string
	Data        []byte
}
