package database

import (
	"database/sql"
)

// Repository bundles the DAOs that share one manager.
type Repository struct {
	Departments *DepartmentRepo
	Sellers     *SellerRepo
}

// NewRepository creates the DAOs over the given manager.
func NewRepository(conn *Manager) *Repository {
	return &Repository{
		Departments: NewDepartmentRepo(conn),
		Sellers:     NewSellerRepo(conn),
	}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// requireRows fails with ErrNoRowsAffected when a write touched nothing.
func requireRows(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
