package forms

import (
	"strconv"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/validation"
)

// DepartmentOptions turns departments into select options keyed by id
func DepartmentOptions(departments []*models.Department) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(departments))
	for _, d := range departments {
		options = append(options, huh.NewOption(d.Name, strconv.Itoa(d.GetID())))
	}
	return options
}

// SellerForm creates a huh form for adding/editing a seller. The
// department is picked from the given list.
func SellerForm(in *validation.SellerInput, departments []*models.Department) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter seller name...").
			CharLimit(validation.MaxSellerNameLen).
			Value(&in.Name),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("name@example.com").
			CharLimit(validation.MaxEmailLen).
			Value(&in.Email),

		huh.NewInput().
			Key("birthDate").
			Title("Birth Date").
			Placeholder("dd/mm/yyyy").
			Value(&in.BirthDate),

		huh.NewInput().
			Key("baseSalary").
			Title("Base Salary").
			Placeholder("0.00").
			Value(&in.BaseSalary),

		huh.NewSelect[string]().
			Key("departmentId").
			Title("Department").
			Options(DepartmentOptions(departments)...).
			Value(&in.DepartmentID),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
