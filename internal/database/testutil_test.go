package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestManager returns a manager over a fresh in-memory database with
// the schema applied.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(
		config.StaticStore(config.Store{URL: "sqlite::memory:", AutoMigrate: true}),
		WithLogger(zerolog.Nop()),
	)
	if _, err := m.Connection(context.Background()); err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return m
}

// setupFileManager returns a manager over a database file in a temp dir,
// so tests can close and reopen it.
func setupFileManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.db")
	m := NewManager(
		config.StaticStore(config.Store{URL: "sqlite:" + path, AutoMigrate: true}),
		WithLogger(zerolog.Nop()),
	)
	t.Cleanup(func() { _ = m.Close() })
	return m, path
}

func createTestDepartment(t *testing.T, repo *DepartmentRepo, name string) *models.Department {
	t.Helper()
	d := models.NewDepartment(name)
	if err := repo.Insert(context.Background(), d); err != nil {
		t.Fatalf("Failed to create department %q: %v", name, err)
	}
	return d
}

func createTestSeller(t *testing.T, repo *SellerRepo, name string, dep *models.Department) *models.Seller {
	t.Helper()
	s := &models.Seller{
		Name:       name,
		Email:      name + "@example.com",
		BirthDate:  models.NewDate(1990, time.May, 17),
		BaseSalary: 3000,
	}
	s.AssignDepartment(dep)
	if err := repo.Insert(context.Background(), s); err != nil {
		t.Fatalf("Failed to create seller %q: %v", name, err)
	}
	return s
}

func countRows(t *testing.T, m *Manager, table string) int {
	t.Helper()
	var n int
	row, err := m.queryRow(context.Background(), "SELECT COUNT(*) FROM "+table)
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	if err := row.Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
