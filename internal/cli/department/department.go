// Package department holds all cli commands related to departments
// e.g., roster department ...
package department

import (
	"github.com/spf13/cobra"
)

// DepartmentCmd returns the department parent command
func DepartmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
