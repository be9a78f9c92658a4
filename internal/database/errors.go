package database

import (
	"errors"
	"fmt"
)

// ErrNoRowsAffected reports a write that touched no rows.
var ErrNoRowsAffected = errors.New("no rows affected")

// ConnectionError reports a failure opening, closing or controlling
// transactions on the store connection.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store connection: failed to %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// StoreError reports any failure while executing a statement, including
// writes that affected no rows.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IntegrityError reports a delete refused because other records still
// reference the row.
type IntegrityError struct {
	Message string
	Err     error
}

func (e *IntegrityError) Error() string { return e.Message }

func (e *IntegrityError) Unwrap() error { return e.Err }

// IsIntegrity reports whether err is, or wraps, an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// IsConnection reports whether err is, or wraps, a ConnectionError.
func IsConnection(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// translate turns a raw failure from a statement into the error surfaced to
// callers. Errors that are already classified pass through untouched.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var ce *ConnectionError
	var ie *IntegrityError
	var se *StoreError
	if errors.As(err, &ce) || errors.As(err, &ie) || errors.As(err, &se) {
		return err
	}

	return &StoreError{Op: op, Err: err}
}
