package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/roster/internal/models"
)

const sellerSelect = `SELECT seller.Id, seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary,
	seller.DepartmentId, department.Name AS DepName
	FROM seller INNER JOIN department ON seller.DepartmentId = department.Id`

// SellerRepo handles all seller-related database operations.
type SellerRepo struct {
	conn *Manager
}

// NewSellerRepo creates a seller DAO over the given manager.
func NewSellerRepo(conn *Manager) *SellerRepo {
	return &SellerRepo{conn: conn}
}

// Insert stores a new seller and writes the generated id back onto s.
func (r *SellerRepo) Insert(ctx context.Context, s *models.Seller) error {
	if s == nil {
		return &StoreError{Op: "insert seller", Err: errors.New("seller is nil")}
	}

	var id int64
	err := r.conn.withTx(ctx, "insert seller", func() error {
		row, err := r.conn.queryRow(ctx,
			`INSERT INTO seller (Name, Email, BirthDate, BaseSalary, DepartmentId)
			VALUES (?, ?, ?, ?, ?) RETURNING Id`,
			s.Name, s.Email, s.BirthDate, s.BaseSalary, s.DepartmentRef(),
		)
		if err != nil {
			return err
		}
		if err := row.Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoRowsAffected
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.ID = models.IntPtr(int(id))
	return nil
}

// Update rewrites every column of the seller, keyed by its id.
func (r *SellerRepo) Update(ctx context.Context, s *models.Seller) error {
	if s == nil || s.ID == nil {
		return &StoreError{Op: "update seller", Err: errors.New("seller has no id")}
	}

	return r.conn.withTx(ctx, "update seller", func() error {
		result, err := r.conn.exec(ctx,
			`UPDATE seller SET Name = ?, Email = ?, BirthDate = ?, BaseSalary = ?, DepartmentId = ?
			WHERE Id = ?`,
			s.Name, s.Email, s.BirthDate, s.BaseSalary, s.DepartmentRef(), *s.ID,
		)
		if err != nil {
			return err
		}
		return requireRows(result)
	})
}

// DeleteByID removes the seller with the given id.
func (r *SellerRepo) DeleteByID(ctx context.Context, id int) error {
	return r.conn.withTx(ctx, "delete seller", func() error {
		_, err := r.conn.exec(ctx, `DELETE FROM seller WHERE Id = ?`, id)
		return err
	})
}

// FindByID returns the seller with its department, or nil when absent.
func (r *SellerRepo) FindByID(ctx context.Context, id int) (*models.Seller, error) {
	row, err := r.conn.queryRow(ctx, sellerSelect+` WHERE seller.Id = ?`, id)
	if err != nil {
		return nil, translate("find seller", err)
	}

	s, err := scanSeller(row, map[int]*models.Department{})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find seller", err)
	}
	return s, nil
}

// FindAll returns every seller ordered by name.
func (r *SellerRepo) FindAll(ctx context.Context) ([]*models.Seller, error) {
	if _, err := r.conn.Connection(ctx); err != nil {
		return nil, err
	}
	query := sellerSelect + ` ORDER BY ` + r.conn.dialect.orderByName("seller.Name")
	return r.list(ctx, "list sellers", query)
}

// FindByDepartment returns the sellers of one department ordered by name.
func (r *SellerRepo) FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error) {
	if _, err := r.conn.Connection(ctx); err != nil {
		return nil, err
	}
	query := sellerSelect + ` WHERE seller.DepartmentId = ? ORDER BY ` + r.conn.dialect.orderByName("seller.Name")
	return r.list(ctx, "list sellers by department", query, departmentID)
}

// list runs a seller query. Sellers of the same department share a single
// Department value, built once per call.
func (r *SellerRepo) list(ctx context.Context, op, query string, args ...any) ([]*models.Seller, error) {
	rows, err := r.conn.query(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	departments := make(map[int]*models.Department)
	sellers := make([]*models.Seller, 0)
	for rows.Next() {
		s, err := scanSeller(rows, departments)
		if err != nil {
			return nil, translate(op, err)
		}
		sellers = append(sellers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(op, err)
	}
	return sellers, nil
}

func scanSeller(sc scanner, departments map[int]*models.Department) (*models.Seller, error) {
	var (
		id, depID int64
		depName   string
	)
	s := &models.Seller{}
	if err := sc.Scan(&id, &s.Name, &s.Email, &s.BirthDate, &s.BaseSalary, &depID, &depName); err != nil {
		return nil, err
	}
	s.ID = models.IntPtr(int(id))

	dep, ok := departments[int(depID)]
	if !ok {
		dep = &models.Department{ID: models.IntPtr(int(depID)), Name: depName}
		departments[int(depID)] = dep
	}
	s.AssignDepartment(dep)

	return s, nil
}
