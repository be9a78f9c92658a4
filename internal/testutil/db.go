// Package testutil provides in-memory stores and output helpers for tests
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// InMemoryStore is the store configuration every test database uses
func InMemoryStore() config.Store {
	return config.Store{URL: "sqlite::memory:", AutoMigrate: true}
}

// SetupTestManager opens a migrated in-memory store. The manager holds a
// single connection, so the database lives until the test ends.
func SetupTestManager(t *testing.T) *database.Manager {
	t.Helper()

	conn := database.NewManager(config.StaticStore(InMemoryStore()), database.WithLogger(zerolog.Nop()))
	if _, err := conn.Connection(context.Background()); err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})
	return conn
}

// SetupTestApp returns an App over a fresh in-memory store
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(SetupTestManager(t), app.WithLogger(zerolog.Nop()))
}

// CreateTestDepartment inserts a department and returns its id
func CreateTestDepartment(t *testing.T, a *app.App, name string) int {
	t.Helper()

	d := models.NewDepartment(name)
	if err := a.DepartmentService.InsertOrUpdate(context.Background(), d); err != nil {
		t.Fatalf("Failed to create test department %q: %v", name, err)
	}
	return d.GetID()
}

// CreateTestSeller inserts a seller in the given department and returns its id
func CreateTestSeller(t *testing.T, a *app.App, departmentID int, name string) int {
	t.Helper()

	s := &models.Seller{
		Name:         name,
		Email:        "seller@example.com",
		BirthDate:    models.NewDate(1990, time.January, 15),
		BaseSalary:   3000,
		DepartmentID: departmentID,
	}
	if err := a.SellerService.InsertOrUpdate(context.Background(), s); err != nil {
		t.Fatalf("Failed to create test seller %q: %v", name, err)
	}
	return s.GetID()
}
