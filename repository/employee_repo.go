package repository

import (
	"context"

	"staffhub/models"
)

// EmployeeRepository defines the interface for employee store operations.
type EmployeeRepository interface {
	// Create assigns the id and timestamps and persists the employee.
	// Returns ErrDuplicateKey when the email already exists.
	Create(ctx context.Context, emp *models.Employee) error
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindAll(ctx context.Context) ([]*models.Employee, error)
	// Search matches department and/or position by case-insensitive
	// substring; supplied terms are combined with AND.
	Search(ctx context.Context, department, position string) ([]*models.Employee, error)
	// UpdateByID applies only the supplied fields, refreshes updated_at
	// and returns the record as persisted.
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.Employee, error)
	DeleteByID(ctx context.Context, id string) error
}
