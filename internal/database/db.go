// Package database manages the store connection and the data access objects
// for departments and sellers.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thenoetrevino/roster/internal/config"
)

// Manager owns the single store connection and the transaction currently
// open on it. It opens the connection lazily, on the first request.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	source  config.StoreSource
	logger  zerolog.Logger
	db      *sql.DB
	tx      *sql.Tx
	dialect *Dialect
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for connection and transaction events.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a manager that reads its settings from source the
// first time a connection is needed.
func NewManager(source config.StoreSource, opts ...ManagerOption) *Manager {
	m := &Manager{
		source: source,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connection returns the open store handle, opening it on first use.
func (m *Manager) Connection(ctx context.Context) (*sql.DB, error) {
	if m.db != nil {
		return m.db, nil
	}

	if m.source == nil {
		return nil, &ConnectionError{Op: "load store config", Err: errors.New("no store configured")}
	}
	store, err := m.source()
	if err != nil {
		return nil, &ConnectionError{Op: "load store config", Err: err}
	}

	dialect, dsn, err := resolveDialect(store)
	if err != nil {
		return nil, &ConnectionError{Op: "open connection", Err: err}
	}

	db, err := sql.Open(dialect.driver, dsn)
	if err != nil {
		return nil, &ConnectionError{Op: "open connection", Err: err}
	}

	// One connection for the whole process; an in-memory sqlite database
	// only lives as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := m.prepare(ctx, db, dialect, store.AutoMigrate); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			m.logger.Error().Err(closeErr).Msg("error closing db")
		}
		return nil, &ConnectionError{Op: "open connection", Err: err}
	}

	m.db = db
	m.dialect = dialect
	m.logger.Debug().Str("dialect", dialect.Name).Msg("Store connection established")

	return db, nil
}

func (m *Manager) prepare(ctx context.Context, db *sql.DB, d *Dialect, migrate bool) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	for _, pragma := range d.pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if !migrate {
		return nil
	}
	if err := runMigrations(ctx, db, d, m.logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the connection. A transaction still open is rolled back
// first. Closing an unopened manager is a no-op, and a closed manager
// reopens on the next Connection call.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	if m.tx != nil {
		if err := m.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			m.logger.Error().Err(err).Msg("Failed to rollback transaction on close")
		}
		m.tx = nil
	}

	db := m.db
	m.db = nil
	m.dialect = nil

	if err := db.Close(); err != nil {
		return &ConnectionError{Op: "close connection", Err: err}
	}
	m.logger.Debug().Msg("Store connection closed")
	return nil
}

// BeginTransaction starts a transaction on the open connection. It does
// nothing when no connection is open or a transaction is already running.
func (m *Manager) BeginTransaction(ctx context.Context) error {
	if m.db == nil || m.tx != nil {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return &ConnectionError{Op: "begin transaction", Err: err}
	}
	m.tx = tx
	return nil
}

// Commit commits the running transaction, if any.
func (m *Manager) Commit() error {
	if m.db == nil || m.tx == nil {
		return nil
	}

	tx := m.tx
	m.tx = nil
	if err := tx.Commit(); err != nil {
		return &ConnectionError{Op: "commit transaction", Err: err}
	}
	return nil
}

// Rollback discards the running transaction, if any.
func (m *Manager) Rollback() error {
	if m.db == nil || m.tx == nil {
		return nil
	}

	tx := m.tx
	m.tx = nil
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return &ConnectionError{Op: "rollback transaction", Err: err}
	}
	return nil
}

// InTransaction reports whether a transaction is running.
func (m *Manager) InTransaction() bool {
	return m.tx != nil
}

// Dialect returns the dialect of the open connection, or nil.
func (m *Manager) Dialect() *Dialect {
	return m.dialect
}

// Statements issued through the manager run inside the running transaction
// when there is one.

func (m *Manager) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if _, err := m.Connection(ctx); err != nil {
		return nil, err
	}
	query = m.dialect.rebind(query)
	if m.tx != nil {
		return m.tx.ExecContext(ctx, query, args...)
	}
	return m.db.ExecContext(ctx, query, args...)
}

func (m *Manager) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if _, err := m.Connection(ctx); err != nil {
		return nil, err
	}
	query = m.dialect.rebind(query)
	if m.tx != nil {
		return m.tx.QueryContext(ctx, query, args...)
	}
	return m.db.QueryContext(ctx, query, args...)
}

func (m *Manager) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if _, err := m.Connection(ctx); err != nil {
		return nil, err
	}
	query = m.dialect.rebind(query)
	if m.tx != nil {
		return m.tx.QueryRowContext(ctx, query, args...), nil
	}
	return m.db.QueryRowContext(ctx, query, args...), nil
}
