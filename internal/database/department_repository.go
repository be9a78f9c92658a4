package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
)

// DepartmentRepo handles all department-related database operations.
type DepartmentRepo struct {
	conn *Manager
}

// NewDepartmentRepo creates a department DAO over the given manager.
func NewDepartmentRepo(conn *Manager) *DepartmentRepo {
	return &DepartmentRepo{conn: conn}
}

// Insert stores a new department and writes the generated id back onto d.
func (r *DepartmentRepo) Insert(ctx context.Context, d *models.Department) error {
	if d == nil {
		return &StoreError{Op: "insert department", Err: errors.New("department is nil")}
	}

	var id int64
	err := r.conn.withTx(ctx, "insert department", func() error {
		row, err := r.conn.queryRow(ctx, `INSERT INTO department (Name) VALUES (?) RETURNING Id`, d.Name)
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

	d.ID = models.IntPtr(int(id))
	return nil
}

// Update rewrites the department's name, keyed by its id.
func (r *DepartmentRepo) Update(ctx context.Context, d *models.Department) error {
	if d == nil || d.ID == nil {
		return &StoreError{Op: "update department", Err: errors.New("department has no id")}
	}

	return r.conn.withTx(ctx, "update department", func() error {
		result, err := r.conn.exec(ctx, `UPDATE department SET Name = ? WHERE Id = ?`, d.Name, *d.ID)
		if err != nil {
			return err
		}
		return requireRows(result)
	})
}

// DeleteByID removes the department with the given id. It fails with an
// IntegrityError while sellers still reference it.
func (r *DepartmentRepo) DeleteByID(ctx context.Context, id int) error {
	return r.conn.withTx(ctx, "delete department", func() error {
		_, err := r.conn.exec(ctx, `DELETE FROM department WHERE Id = ?`, id)
		if isForeignKeyViolation(err) {
			return &IntegrityError{
				Message: fmt.Sprintf("cannot delete department %d: referenced by other records", id),
				Err:     err,
			}
		}
		return err
	})
}

// FindByID returns the department with the given id, or nil when absent.
func (r *DepartmentRepo) FindByID(ctx context.Context, id int) (*models.Department, error) {
	row, err := r.conn.queryRow(ctx, `SELECT Id, Name FROM department WHERE Id = ?`, id)
	if err != nil {
		return nil, translate("find department", err)
	}

	d, err := scanDepartment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("find department", err)
	}
	return d, nil
}

// FindAll returns every department ordered by name.
func (r *DepartmentRepo) FindAll(ctx context.Context) ([]*models.Department, error) {
	if _, err := r.conn.Connection(ctx); err != nil {
		return nil, err
	}

	query := `SELECT Id, Name FROM department ORDER BY ` + r.conn.dialect.orderByName("Name")
	rows, err := r.conn.query(ctx, query)
	if err != nil {
		return nil, translate("list departments", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, translate("list departments", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, translate("list departments", err)
	}
	return departments, nil
}

func scanDepartment(s scanner) (*models.Department, error) {
	var id int64
	d := &models.Department{}
	if err := s.Scan(&id, &d.Name); err != nil {
		return nil, err
	}
	d.ID = models.IntPtr(int(id))
	return d, nil
}
