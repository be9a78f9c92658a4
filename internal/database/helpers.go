package database

import (
	"context"
)

// withTx runs fn inside a transaction on the manager. The transaction is
// committed when fn succeeds and rolled back otherwise. When a transaction
// is already running, fn joins it and the outer owner decides its fate.
func (m *Manager) withTx(ctx context.Context, op string, fn func() error) error {
	if _, err := m.Connection(ctx); err != nil {
		return err
	}

	if m.InTransaction() {
		return translate(op, fn())
	}

	if err := m.BeginTransaction(ctx); err != nil {
		return err
	}

	if err := fn(); err != nil {
		m.rollback(op)
		return translate(op, err)
	}

	if err := m.Commit(); err != nil {
		return err
	}

	return nil
}

// rollback discards the running transaction after a failed write. A failed
// rollback is logged and otherwise ignored so the original error surfaces.
func (m *Manager) rollback(op string) {
	m.logger.Debug().Str("op", op).Msg("Rolling back transaction")
	if err := m.Rollback(); err != nil {
		m.logger.Error().Err(err).Str("op", op).Msg("Failed to rollback transaction")
	}
}
