package database

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thenoetrevino/roster/internal/config"
)

func TestMigrations_RecordVersions(t *testing.T) {
	m := setupTestManager(t)

	var version int
	row, err := m.queryRow(context.Background(), "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if err := row.Scan(&version); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	latest := sqliteMigrations[len(sqliteMigrations)-1].Version
	if version != latest {
		t.Errorf("Schema version = %d, want %d", version, latest)
	}
}

func TestMigrations_Idempotent(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	db, err := m.Connection(ctx)
	if err != nil {
		t.Fatalf("Connection failed: %v", err)
	}
	if err := runMigrations(ctx, db, sqliteDialect, zerolog.Nop()); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	if n := countRows(t, m, "schema_migrations"); n != len(sqliteMigrations) {
		t.Errorf("Expected %d recorded migrations, got %d", len(sqliteMigrations), n)
	}
}

func TestMigrations_SkippedWhenDisabled(t *testing.T) {
	m := NewManager(
		config.StaticStore(config.Store{URL: "sqlite::memory:", AutoMigrate: false}),
		WithLogger(zerolog.Nop()),
	)
	defer m.Close()

	_, err := NewDepartmentRepo(m).FindAll(context.Background())
	var se *StoreError
	if err == nil || !errors.As(err, &se) {
		t.Errorf("Expected StoreError without schema, got %v", err)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	script := `
		-- departments
		CREATE TABLE a (id INTEGER);

		CREATE TABLE b (
			id INTEGER
		);
		CREATE INDEX idx ON b(id)
	`
	stmts := splitSQLStatements(script)
	if len(stmts) != 3 {
		t.Fatalf("Expected 3 statements, got %d: %q", len(stmts), stmts)
	}
}
