package seller

import "errors"

// Seller-related errors
var (
	// ErrMissingID is returned when a delete is requested for a seller that
	// was never persisted
	ErrMissingID = errors.New("seller has no id")
)
