package seller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ShowCmd returns the seller show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a seller",
		Long: `Show a single seller, with its department, by ID.

Examples:
  roster seller show --id=3
  roster seller show --id=3 --json
`,
		RunE: handler.Command(&showHandler{}, parseShowFlags),
	}

	cmd.Flags().Int("id", 0, "Seller ID (required)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// showHandler implements handler.Handler for a single seller
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	s, err := findSeller(ctx, cliInstance, args.GetInt("id", 0))
	if err != nil {
		return nil, err
	}
	return sellerCard{Seller: s}, nil
}

func parseShowFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
