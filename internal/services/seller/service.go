package seller

import (
	"context"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// Service defines all seller-related business operations
type Service interface {
	// Read operations
	FindAll(ctx context.Context) ([]*models.Seller, error)
	FindByID(ctx context.Context, id int) (*models.Seller, error)
	FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error)

	// Write operations
	InsertOrUpdate(ctx context.Context, s *models.Seller) error
	Delete(ctx context.Context, s *models.Seller) error
}

// service implements Service interface
type service struct {
	dao database.SellerDAO
}

// NewService creates a new seller service
func NewService(dao database.SellerDAO) Service {
	return &service{dao: dao}
}

func (svc *service) FindAll(ctx context.Context) ([]*models.Seller, error) {
	return svc.dao.FindAll(ctx)
}

func (svc *service) FindByID(ctx context.Context, id int) (*models.Seller, error) {
	return svc.dao.FindByID(ctx, id)
}

func (svc *service) FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error) {
	return svc.dao.FindByDepartment(ctx, departmentID)
}

// InsertOrUpdate inserts a seller without an id and updates one with an id
func (svc *service) InsertOrUpdate(ctx context.Context, s *models.Seller) error {
	if s.IsNew() {
		return svc.dao.Insert(ctx, s)
	}
	return svc.dao.Update(ctx, s)
}

// Delete removes a persisted seller
func (svc *service) Delete(ctx context.Context, s *models.Seller) error {
	if s == nil || s.ID == nil {
		return ErrMissingID
	}
	return svc.dao.DeleteByID(ctx, *s.ID)
}
