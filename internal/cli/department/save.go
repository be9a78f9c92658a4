package department

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/forms"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/validation"
)

// promptDepartment runs the interactive form; swapped out in tests
var promptDepartment = func(in *validation.DepartmentInput, cfg *config.Config) error {
	return forms.DepartmentForm(in).
		WithTheme(forms.Theme(cfg.ColorScheme)).
		Run()
}

// SaveCmd returns the department save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a department",
		Long: `Create a department, or update it when --id is given.

Examples:
  # Create
  roster department save --name="Books"

  # Rename department 1
  roster department save --id=1 --name="Literature"

  # Edit interactively, pre-filled from the stored record
  roster department save --id=1 -i

  # Quiet mode for bash capture
  DEPT_ID=$(roster department save --name="Books" --quiet)
`,
		RunE: handler.Command(&saveHandler{}, parseSaveFlags),
	}

	cmd.Flags().Int("id", 0, "Department ID to update (omit to create)")
	cmd.Flags().String("name", "", "Department name")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the fields with a form")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// saveHandler implements handler.Handler for department create/update
type saveHandler struct{}

// Execute implements the Handler interface
func (h *saveHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	var in validation.DepartmentInput
	if id := args.GetInt("id", 0); id > 0 {
		existing, err := findDepartment(ctx, cliInstance, id)
		if err != nil {
			return nil, err
		}
		in.ID = strconv.Itoa(id)
		in.Name = existing.Name
	}
	if args.Has("name") {
		in.Name = args.GetString("name", "")
	}

	if args.GetBool("interactive") {
		if err := promptDepartment(&in, cliInstance.Config); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return cancelled, nil
			}
			return nil, fmt.Errorf("failed to read form: %w", err)
		}
	}

	result := validation.Department(in)
	if err := result.Err(); err != nil {
		return nil, err
	}

	d := result.Value
	action := actionUpdated
	if d.IsNew() {
		action = actionCreated
	}

	if err := cliInstance.App.DepartmentService.InsertOrUpdate(ctx, d); err != nil {
		return nil, err
	}

	return &saveResult{Action: action, Department: d}, nil
}

func parseSaveFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseOptionalID("id")
	return err
}
