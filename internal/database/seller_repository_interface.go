package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// SellerReader defines read operations for sellers.
type SellerReader interface {
	FindByID(ctx context.Context, id int) (*models.Seller, error)
	FindAll(ctx context.Context) ([]*models.Seller, error)
	FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error)
}

// SellerWriter defines write operations for sellers.
type SellerWriter interface {
	Insert(ctx context.Context, s *models.Seller) error
	Update(ctx context.Context, s *models.Seller) error
	DeleteByID(ctx context.Context, id int) error
}

// SellerDAO combines all seller operations.
type SellerDAO interface {
	SellerReader
	SellerWriter
}
