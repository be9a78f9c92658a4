package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// DepartmentReader defines read operations for departments.
type DepartmentReader interface {
	FindByID(ctx context.Context, id int) (*models.Department, error)
	FindAll(ctx context.Context) ([]*models.Department, error)
}

// DepartmentWriter defines write operations for departments.
type DepartmentWriter interface {
	Insert(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	DeleteByID(ctx context.Context, id int) error
}

// DepartmentDAO combines all department operations.
type DepartmentDAO interface {
	DepartmentReader
	DepartmentWriter
}
