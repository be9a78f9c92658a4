package app

import (
	"github.com/rs/zerolog"

	"github.com/thenoetrevino/roster/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger zerolog.Logger
	store  database.DataStore
}

// WithLogger sets the logger for the application
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithDataStore replaces the store-backed DAOs, mostly for tests
func WithDataStore(store database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}
