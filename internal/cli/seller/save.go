package seller

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
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/validation"
)

// promptSeller runs the interactive form; swapped out in tests
var promptSeller = func(in *validation.SellerInput, departments []*models.Department, cfg *config.Config) error {
	return forms.SellerForm(in, departments).
		WithTheme(forms.Theme(cfg.ColorScheme)).
		Run()
}

// SaveCmd returns the seller save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a seller",
		Long: `Create a seller, or update it when --id is given. On update, flags
that are left out keep their stored values.

Examples:
  # Create
  roster seller save --name="Ann" --email="ann@example.com" \
    --birth-date=25/12/1990 --salary=2500 --department=1

  # Give seller 3 a raise
  roster seller save --id=3 --salary=3100

  # Edit interactively, pre-filled from the stored record
  roster seller save --id=3 -i
`,
		RunE: handler.Command(&saveHandler{}, parseSaveFlags),
	}

	cmd.Flags().Int("id", 0, "Seller ID to update (omit to create)")
	cmd.Flags().String("name", "", "Seller name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("birth-date", "", "Birth date (dd/mm/yyyy or yyyy-mm-dd)")
	cmd.Flags().String("salary", "", "Base salary, greater than zero")
	cmd.Flags().Int("department", 0, "Department ID")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the fields with a form")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// saveHandler implements handler.Handler for seller create/update
type saveHandler struct{}

// Execute implements the Handler interface
func (h *saveHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	var in validation.SellerInput
	if id := args.GetInt("id", 0); id > 0 {
		existing, err := findSeller(ctx, cliInstance, id)
		if err != nil {
			return nil, err
		}
		in = inputFrom(existing)
	}
	applyFlags(&in, args)

	if args.GetBool("interactive") {
		departments, err := cliInstance.App.DepartmentService.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if err := promptSeller(&in, departments, cliInstance.Config); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return cancelled, nil
			}
			return nil, fmt.Errorf("failed to read form: %w", err)
		}
	}

	result := validation.Seller(in)
	if err := result.Err(); err != nil {
		return nil, err
	}

	s := result.Value
	action := actionUpdated
	if s.IsNew() {
		action = actionCreated
	}

	if err := cliInstance.App.SellerService.InsertOrUpdate(ctx, s); err != nil {
		return nil, err
	}

	// Re-read through the join so the output shows the department name
	if saved, err := cliInstance.App.SellerService.FindByID(ctx, s.GetID()); err == nil && saved != nil {
		s = saved
	}

	return &saveResult{Action: action, Seller: s}, nil
}

// inputFrom renders a stored seller back into form values
func inputFrom(s *models.Seller) validation.SellerInput {
	return validation.SellerInput{
		ID:           strconv.Itoa(s.GetID()),
		Name:         s.Name,
		Email:        s.Email,
		BirthDate:    s.BirthDate.Format(models.DisplayDateLayout),
		BaseSalary:   strconv.FormatFloat(s.BaseSalary, 'f', -1, 64),
		DepartmentID: strconv.Itoa(s.DepartmentRef()),
	}
}

// applyFlags overrides form values with the flags that were given
func applyFlags(in *validation.SellerInput, args *handler.Arguments) {
	if args.Has("name") {
		in.Name = args.GetString("name", "")
	}
	if args.Has("email") {
		in.Email = args.GetString("email", "")
	}
	if args.Has("birth-date") {
		in.BirthDate = args.GetString("birth-date", "")
	}
	if args.Has("salary") {
		in.BaseSalary = args.GetString("salary", "")
	}
	if args.Has("department") {
		in.DepartmentID = strconv.Itoa(args.GetInt("department", 0))
	}
}

func parseSaveFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseOptionalID("id")
	return err
}
