package forms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/roster/internal/validation"
)

// DepartmentForm creates a huh form editing in place. Pre-filled values
// in `in` are shown as the starting text.
func DepartmentForm(in *validation.DepartmentInput) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Department Name").
			Placeholder("Enter department name...").
			CharLimit(validation.MaxDepartmentNameLen).
			Value(&in.Name),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
