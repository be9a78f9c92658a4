// Package cli holds the shared plumbing for roster's terminal commands:
// the per-invocation CLI context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
)

// Settings are the global flags every command inherits from the root
type Settings struct {
	PropertiesPath string
	LogLevel       string
	LogFile        string
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// borrowed is set when the App came from the caller (tests); Close
	// then leaves the connection alone.
	borrowed bool
}

// NewCLI wires a connection manager over the properties file named in
// settings. The store is not touched until the first service call.
func NewCLI(_ context.Context, settings Settings, cfg *config.Config) (*CLI, error) {
	path := settings.PropertiesPath
	if path == "" {
		path = config.DefaultPropertiesPath
	}
	if cfg == nil {
		cfg = config.Default()
	}

	logger := log.Logger
	conn := database.NewManager(config.PropertiesSource(path), database.WithLogger(logger))
	application := app.New(conn, app.WithLogger(logger))

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c == nil || c.App == nil || c.borrowed {
		return nil
	}
	if err := c.App.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

type contextKey string

const (
	appKey      contextKey = "roster.app"
	settingsKey contextKey = "roster.settings"
	configKey   contextKey = "roster.config"
)

// WithApp makes commands run against an existing App instead of opening
// the configured store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithSettings stores the global flag values for GetCLIFromContext
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey, s)
}

// WithConfig stores the loaded display configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the current command. An App injected
// with WithApp is reused; otherwise a new one is built from the settings.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := ConfigFromContext(ctx)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg, borrowed: true}, nil
	}

	settings, _ := ctx.Value(settingsKey).(Settings)
	return NewCLI(ctx, settings, cfg)
}
