// Package app wires the connection manager, DAOs and services together.
package app

import (
	"github.com/rs/zerolog"

	"github.com/thenoetrevino/roster/internal/database"
	departmentservice "github.com/thenoetrevino/roster/internal/services/department"
	sellerservice "github.com/thenoetrevino/roster/internal/services/seller"
)

// App holds all application services and provides dependency injection.
type App struct {
	conn   *database.Manager
	repo   database.DataStore
	logger zerolog.Logger

	// Service layer
	DepartmentService departmentservice.Service
	SellerService     sellerservice.Service
}

// New creates a new App with all services initialized over conn.
func New(conn *database.Manager, opts ...Option) *App {
	cfg := &appConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := cfg.store
	if repo == nil {
		repo = database.NewRepository(conn)
	}

	return &App{
		conn:              conn,
		repo:              repo,
		logger:            cfg.logger,
		DepartmentService: departmentservice.NewService(repo.DepartmentStore()),
		SellerService:     sellerservice.NewService(repo.SellerStore()),
	}
}

// Repo returns the DAOs behind the services.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger {
	return a.logger
}

// Close releases the store connection.
func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close store connection")
		return err
	}
	return nil
}
