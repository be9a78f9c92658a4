package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type migration struct {
	Version int
	Name    string
	SQL     string
}

var sqliteMigrations = []migration{
	{
		Version: 1,
		Name:    "initial_schema",
		SQL: `
			CREATE TABLE IF NOT EXISTS department (
				Id INTEGER PRIMARY KEY AUTOINCREMENT,
				Name VARCHAR(60) COLLATE NOCASE NOT NULL
			);

			CREATE TABLE IF NOT EXISTS seller (
				Id INTEGER PRIMARY KEY AUTOINCREMENT,
				Name VARCHAR(70) COLLATE NOCASE NOT NULL,
				Email VARCHAR(100) NOT NULL,
				BirthDate DATE NOT NULL,
				BaseSalary DECIMAL(12,2) NOT NULL,
				DepartmentId INTEGER NOT NULL REFERENCES department(Id)
			);
		`,
	},
	{
		Version: 2,
		Name:    "seller_department_index",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_seller_department ON seller(DepartmentId);
		`,
	},
}

var postgresMigrations = []migration{
	{
		Version: 1,
		Name:    "initial_schema",
		SQL: `
			CREATE TABLE IF NOT EXISTS department (
				Id SERIAL PRIMARY KEY,
				Name VARCHAR(60) NOT NULL
			);

			CREATE TABLE IF NOT EXISTS seller (
				Id SERIAL PRIMARY KEY,
				Name VARCHAR(70) NOT NULL,
				Email VARCHAR(100) NOT NULL,
				BirthDate DATE NOT NULL,
				BaseSalary NUMERIC(12,2) NOT NULL,
				DepartmentId INTEGER NOT NULL REFERENCES department(Id)
			);
		`,
	},
	{
		Version: 2,
		Name:    "seller_department_index",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_seller_department ON seller(DepartmentId);
		`,
	},
}

// runMigrations brings the schema up to the latest version known to the
// dialect. Each migration is applied in its own transaction.
func runMigrations(ctx context.Context, db *sql.DB, d *Dialect, logger zerolog.Logger) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	err = db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	logger.Debug().Int("current_version", currentVersion).Str("dialect", d.Name).Msg("Current schema version")

	for _, m := range d.migrations {
		if m.Version <= currentVersion {
			continue
		}

		logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("Applying migration")

		if err := applyMigration(ctx, db, d, m, logger); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, d *Dialect, m migration, logger zerolog.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Error().Err(err).Int("version", m.Version).Msg("Failed to rollback migration")
		}
	}()

	for i, stmt := range splitSQLStatements(m.SQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d statement %d failed: %w", m.Version, i+1, err)
		}
	}

	if _, err := tx.ExecContext(ctx, d.rebind("INSERT INTO schema_migrations (version) VALUES (?)"), m.Version); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// splitSQLStatements splits a SQL script into individual statements,
// dropping blank lines and line comments.
func splitSQLStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.SplitSeq(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			if stmt := strings.TrimSpace(current.String()); stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}

	return statements
}
