// Package seller holds all cli commands related to sellers
// e.g., roster seller ...
package seller

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
)

// SellerCmd returns the seller parent command
func SellerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller",
		Short: "Manage sellers",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// findSeller loads a seller or reports it as not found
func findSeller(ctx context.Context, c *cli.CLI, id int) (*models.Seller, error) {
	s, err := c.App.SellerService.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &cli.NotFoundError{Entity: "seller", ID: id}
	}
	return s, nil
}

// requireDepartment fails with a not-found error for unknown departments
func requireDepartment(ctx context.Context, c *cli.CLI, id int) (*models.Department, error) {
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
