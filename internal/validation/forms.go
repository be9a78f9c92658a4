package validation

import (
	"strings"

	"github.com/thenoetrevino/roster/internal/models"
)

// DepartmentInput is the department form as typed.
type DepartmentInput struct {
	ID   string
	Name string
}

type departmentForm struct {
	Name string `field:"name" validate:"required,max=30"`
}

// Department checks a department form and builds the entity it describes.
func Department(in DepartmentInput) Result[*models.Department] {
	form := departmentForm{Name: strings.TrimSpace(in.Name)}

	d := &models.Department{Name: form.Name}
	if id, ok := parseID(in.ID); ok {
		d.ID = models.IntPtr(id)
	}

	return Result[*models.Department]{Value: d, Errors: check(form)}
}

// SellerInput is the seller form as typed.
type SellerInput struct {
	ID           string
	Name         string
	Email        string
	BirthDate    string
	BaseSalary   string
	DepartmentID string
}

type sellerForm struct {
	Name         string `field:"name" validate:"required,max=70"`
	Email        string `field:"email" validate:"required,max=60,roster_email"`
	BirthDate    string `field:"birthDate" validate:"required,roster_date"`
	BaseSalary   string `field:"baseSalary" validate:"required,roster_amount"`
	DepartmentID string `field:"departmentId" validate:"required,roster_ref"`
}

// Seller checks a seller form and builds the entity it describes.
func Seller(in SellerInput) Result[*models.Seller] {
	form := sellerForm{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		BirthDate:    strings.TrimSpace(in.BirthDate),
		BaseSalary:   strings.TrimSpace(in.BaseSalary),
		DepartmentID: strings.TrimSpace(in.DepartmentID),
	}

	s := &models.Seller{Name: form.Name, Email: form.Email}
	if id, ok := parseID(in.ID); ok {
		s.ID = models.IntPtr(id)
	}
	if d, err := models.ParseDate(form.BirthDate); err == nil {
		s.BirthDate = d
	}
	if f, ok := parseAmount(form.BaseSalary); ok {
		s.BaseSalary = f
	}
	if id, ok := parseID(form.DepartmentID); ok && id > 0 {
		s.DepartmentID = id
	}

	return Result[*models.Seller]{Value: s, Errors: check(form)}
}
