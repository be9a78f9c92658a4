package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/validation"
)

// Renderer is implemented by command results that know their human form
type Renderer interface {
	Render(display config.Display) string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON    bool
	Quiet   bool
	Display config.Display
}

// NewOutputFormatter builds a formatter using the display preferences in cfg
func NewOutputFormatter(jsonOutput, quiet bool, cfg *config.Config) *OutputFormatter {
	display := config.DefaultDisplay()
	if cfg != nil {
		display = cfg.Display
	}
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Display: display}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ IDs() []int }:
			for _, id := range v.IDs() {
				fmt.Fprintf(os.Stdout, "%d\n", id)
			}
			return nil
		case interface{ GetID() int }:
			fmt.Fprintf(os.Stdout, "%d\n", v.GetID())
			return nil
		}
	}

	if f.JSON {
		return writeJSON(os.Stdout, map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information. JSON errors go to stdout so agents
// can parse them; human errors go to stderr.
func (f *OutputFormatter) Error(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *validation.ValidationError
	isValidation := errors.As(err, &validationErr)

	if f.JSON {
		errData := map[string]any{
			"code":    ErrorCode(err),
			"message": err.Error(),
		}
		if isValidation {
			errData["fields"] = validationErr.Fields
		}
		return writeJSON(os.Stdout, map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if isValidation {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Validation failed"))
		for _, field := range sortedKeys(validationErr.Fields) {
			fmt.Fprintf(os.Stderr, "  %s %s\n",
				styles.LabelStyle.Render(field+":"),
				validationErr.Fields[field])
		}
		return nil
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), err.Error())
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case Renderer:
		fmt.Fprintln(os.Stdout, v.Render(f.Display))
	case string:
		fmt.Fprintln(os.Stdout, v)
	case nil:
	default:
		fmt.Fprintf(os.Stdout, "%+v\n", data)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
