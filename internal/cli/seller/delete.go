package seller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// DeleteCmd returns the seller delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a seller",
		Long: `Delete a seller by ID (requires confirmation unless --force or --quiet).

Examples:
  roster seller delete --id=3
  roster seller delete --id=3 --force
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Seller ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd, "Minimal output (no confirmation)")

	return cmd
}

// deleteHandler implements handler.Handler for seller deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	id := args.GetInt("id", 0)
	s, err := findSeller(ctx, cliInstance, id)
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("quiet") {
		prompt := fmt.Sprintf("Delete seller #%d: '%s'?", id, s.Name)
		if !cli.Confirm(args.GetCmd().InOrStdin(), prompt) {
			return cancelled, nil
		}
	}

	if err := cliInstance.App.SellerService.Delete(ctx, s); err != nil {
		return nil, err
	}

	return &deleteResult{ID: id, Name: s.Name}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
