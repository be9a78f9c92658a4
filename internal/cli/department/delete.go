package department

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// DeleteCmd returns the department delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a department",
		Long: `Delete a department by ID (requires confirmation unless --force or --quiet).

A department that still has sellers cannot be deleted.

Examples:
  # Delete with confirmation
  roster department delete --id=1

  # Skip confirmation
  roster department delete --id=1 --force
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Department ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd, "Minimal output (no confirmation)")

	return cmd
}

// deleteHandler implements handler.Handler for department deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	id := args.GetInt("id", 0)
	d, err := findDepartment(ctx, cliInstance, id)
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("quiet") {
		prompt := fmt.Sprintf("Delete department #%d: '%s'?", id, d.Name)
		if !cli.Confirm(args.GetCmd().InOrStdin(), prompt) {
			return cancelled, nil
		}
	}

	if err := cliInstance.App.DepartmentService.Delete(ctx, d); err != nil {
		return nil, err
	}

	return &deleteResult{ID: id, Name: d.Name}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
