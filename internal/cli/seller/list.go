package seller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the seller list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sellers",
		Long: `List sellers ordered by name, optionally only those of one department.

Examples:
  # Every seller
  roster seller list

  # Sellers of department 2, as JSON
  roster seller list --department=2 --json
`,
		RunE: handler.Command(&listHandler{}, parseListFlags),
	}

	cmd.Flags().Int("department", 0, "Only list sellers of this department")
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing sellers
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	departmentID := args.GetInt("department", 0)
	if departmentID == 0 {
		sellers, err := cliInstance.App.SellerService.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return sellerList{Sellers: sellers}, nil
	}

	department, err := requireDepartment(ctx, cliInstance, departmentID)
	if err != nil {
		return nil, err
	}
	sellers, err := cliInstance.App.SellerService.FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return sellerList{Department: department, Sellers: sellers}, nil
}

func parseListFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseOptionalID("department")
	return err
}
