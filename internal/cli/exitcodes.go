package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store errors, connection errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable form input or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: any field that fails the pre-persistence checks.
	ExitValidation = 5

	// ExitIntegrity indicates the store refused a delete because other
	// records still reference the row.
	ExitIntegrity = 6
)

// UsageError marks a problem with how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// NotFoundError reports a lookup by id that matched nothing
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ExitCodeFor maps an error returned by a command to its process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usageErr      *UsageError
		notFoundErr   *NotFoundError
		validationErr *validation.ValidationError
		integrityErr  *database.IntegrityError
	)
	switch {
	case errors.As(err, &validationErr):
		return ExitValidation
	case errors.As(err, &integrityErr):
		return ExitIntegrity
	case errors.As(err, &notFoundErr):
		return ExitNotFound
	case errors.As(err, &usageErr):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	var (
		usageErr      *UsageError
		notFoundErr   *NotFoundError
		validationErr *validation.ValidationError
		integrityErr  *database.IntegrityError
		connErr       *database.ConnectionError
		storeErr      *database.StoreError
	)
	switch {
	case errors.As(err, &validationErr):
		return "VALIDATION_ERROR"
	case errors.As(err, &integrityErr):
		return "INTEGRITY_ERROR"
	case errors.As(err, &notFoundErr):
		return "NOT_FOUND"
	case errors.As(err, &usageErr):
		return "USAGE_ERROR"
	case errors.As(err, &connErr):
		return "CONNECTION_ERROR"
	case errors.As(err, &storeErr):
		return "STORE_ERROR"
	default:
		return "ERROR"
	}
}

// reportedError marks an error the formatter already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Reported wraps err to record that it was already shown to the user
func Reported(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	return &reportedError{err: err}
}

// IsReported reports whether err went through Reported
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}
