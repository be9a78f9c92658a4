// Package cmd assembles roster's cobra command tree.
package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/department"
	"github.com/thenoetrevino/roster/internal/cli/seller"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/logging"
)

// PropertiesEnv overrides the default properties path
const PropertiesEnv = "ROSTER_PROPERTIES"

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	var settings cli.Settings

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - departments and sellers from the terminal",
		Long: `Roster keeps a registry of departments and the sellers assigned to them.

The store is configured in a properties file (db.properties by default):

  urlDataBase=sqlite:roster.db
  user=
  password=
  autoMigrate=true

Every key can be overridden with a ROSTER_ environment variable,
e.g. ROSTER_URLDATABASE=postgres://localhost/roster.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, settings)
		},
	}

	defaultProperties := os.Getenv(PropertiesEnv)
	if defaultProperties == "" {
		defaultProperties = config.DefaultPropertiesPath
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.PropertiesPath, "properties", defaultProperties,
		"Store properties file (env "+PropertiesEnv+")")
	flags.StringVar(&settings.LogLevel, "log-level", "info", "Log level: trace, debug or info")
	flags.StringVar(&settings.LogFile, "log-file", "", "Log file (default: roster.log next to the properties file)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(department.DepartmentCmd())
	rootCmd.AddCommand(seller.SellerCmd())

	return rootCmd
}

// setup configures logging, display preferences and the settings every
// subcommand reads through cli.GetCLIFromContext
func setup(cmd *cobra.Command, settings cli.Settings) error {
	logFile := settings.LogFile
	if logFile == "" {
		logFile = logging.FilePathFor(settings.PropertiesPath)
	}
	logging.Apply(settings.LogLevel, logFile)

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = cli.WithConfig(ctx, cfg)
	ctx = cli.WithSettings(ctx, settings)
	cmd.SetContext(ctx)

	return nil
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Anything a handler did not report came from cobra itself: unknown
	// commands, malformed flags
	if !cli.IsReported(err) {
		formatter := &cli.OutputFormatter{}
		_ = formatter.Error(err)
		return cli.ExitUsage
	}

	return cli.ExitCodeFor(err)
}
