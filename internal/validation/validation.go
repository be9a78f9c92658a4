// Package validation checks raw form input before it reaches the services.
//
// Inputs are the strings a user typed. Each check yields a Result holding
// the parsed entity and every (field, message) pair that failed; nothing in
// this package touches the store.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thenoetrevino/roster/internal/models"
)

// Field length limits shown to users.
const (
	MaxDepartmentNameLen = 30
	MaxSellerNameLen     = 70
	MaxEmailLen          = 60
)

// User-facing messages.
const (
	MsgEmpty          = "Field can't be empty"
	MsgInvalidValue   = "Invalid value"
	MsgInvalidDate    = "Invalid date"
	MsgNotPositive    = "Value must be greater than zero"
	MsgNoDepartment   = "Select a department"
	msgTooLongPattern = "Value can't exceed %s characters"
)

var emailRegex = regexp.MustCompile(
	"^[a-zA-Z0-9_!#$%&'*+/=?`{|}~^-]+(?:\\.[a-zA-Z0-9_!#$%&'*+/=?`{|}~^-]+)*@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$",
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("field")
	})

	mustRegister(v, "roster_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "roster_date", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "roster_amount", func(fl validator.FieldLevel) bool {
		f, ok := parseAmount(fl.Field().String())
		return ok && f > 0
	})
	mustRegister(v, "roster_ref", func(fl validator.FieldLevel) bool {
		id, ok := parseID(fl.Field().String())
		return ok && id > 0
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// FieldError is one failed field with its user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failed field of one form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Result is the outcome of checking one form. Value is filled with
// whatever could be parsed even when Errors is not empty.
type Result[T any] struct {
	Value  T
	Errors []FieldError
}

// OK reports whether every field passed.
func (r Result[T]) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a *ValidationError when any field failed, or nil.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Fields: r.Messages()}
}

// Messages maps field names to messages.
func (r Result[T]) Messages() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, fe := range r.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

// check runs the struct tags on form and converts failures to FieldErrors.
func check(form any) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "departmentId" {
			return MsgNoDepartment
		}
		return MsgEmpty
	case "max":
		return fmt.Sprintf(msgTooLongPattern, fe.Param())
	case "roster_email":
		return MsgInvalidValue
	case "roster_date":
		return MsgInvalidDate
	case "roster_amount":
		return MsgNotPositive
	case "roster_ref":
		return MsgNoDepartment
	default:
		return MsgInvalidValue
	}
}

// parseID reads an optional integer id. Anything unparsable counts as absent.
func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseAmount(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
