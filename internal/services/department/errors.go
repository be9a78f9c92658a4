package department

import "errors"

// Department-related errors
var (
	// ErrMissingID is returned when a delete is requested for a department
	// that was never persisted
	ErrMissingID = errors.New("department has no id")
)
