package department

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the department list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all departments",
		Long: `List all departments ordered by name.

Examples:
  # Human-readable list
  roster department list

  # JSON output for agents
  roster department list --json

  # One id per line
  roster department list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing departments
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	departments, err := cliInstance.App.DepartmentService.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return departmentList(departments), nil
}
