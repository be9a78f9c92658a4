package department

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
)

// ShowCmd returns the department show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a department",
		Long: `Show a single department by ID.

Examples:
  roster department show --id=1
  roster department show --id=1 --json
`,
		RunE: handler.Command(&showHandler{}, parseShowFlags),
	}

	cmd.Flags().Int("id", 0, "Department ID (required)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// showHandler implements handler.Handler for a single department
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	d, err := findDepartment(ctx, cliInstance, args.GetInt("id", 0))
	if err != nil {
		return nil, err
	}
	return departmentCard{Department: d}, nil
}

func parseShowFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}

// findDepartment loads a department or reports it as not found
func findDepartment(ctx context.Context, c *cli.CLI, id int) (*models.Department, error) {
	d, err := c.App.DepartmentService.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &cli.NotFoundError{Entity: "department", ID: id}
	}
	return d, nil
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close CLI")
	}
}
