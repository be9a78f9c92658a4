package department

import (
	"context"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// Service defines all department-related business operations
type Service interface {
	// Read operations
	FindAll(ctx context.Context) ([]*models.Department, error)
	FindByID(ctx context.Context, id int) (*models.Department, error)

	// Write operations
	InsertOrUpdate(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, d *models.Department) error
}

// service implements Service interface
type service struct {
	dao database.DepartmentDAO
}

// NewService creates a new department service
func NewService(dao database.DepartmentDAO) Service {
	return &service{dao: dao}
}

// FindAll returns every department ordered by name
func (s *service) FindAll(ctx context.Context) ([]*models.Department, error) {
	return s.dao.FindAll(ctx)
}

// FindByID returns the department or nil when it does not exist
func (s *service) FindByID(ctx context.Context, id int) (*models.Department, error) {
	return s.dao.FindByID(ctx, id)
}

// InsertOrUpdate inserts a department without an id and updates one with an id
func (s *service) InsertOrUpdate(ctx context.Context, d *models.Department) error {
	if d.IsNew() {
		return s.dao.Insert(ctx, d)
	}
	return s.dao.Update(ctx, d)
}

// Delete removes a persisted department
func (s *service) Delete(ctx context.Context, d *models.Department) error {
	if d == nil || d.ID == nil {
		return ErrMissingID
	}
	return s.dao.DeleteByID(ctx, *d.ID)
}
