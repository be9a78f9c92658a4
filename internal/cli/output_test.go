package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/validation"
)

// ============================================================================
// Helpers
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockList struct {
	ids []int
}

func (m mockList) IDs() []int {
	return m.ids
}

type mockRenderer struct {
	Name string `json:"name"`
}

func (m mockRenderer) Render(d config.Display) string {
	return "rendered " + m.Name + " " + d.FormatSalary(1)
}

// capture swaps *target (os.Stdout or os.Stderr) for a pipe while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	require.NoError(t, err)
	*target = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	*target = old
	return <-outC
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Success(mockRenderer{Name: "Books"}))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, map[string]any{"name": "Books"}, result["data"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single id", mockDataWithID{ID: 42}, "42\n"},
		{"pointer with id", &mockDataWithID{ID: 7}, "7\n"},
		{"list of ids", mockList{ids: []int{3, 1, 2}}, "3\n1\n2\n"},
		{"empty list", mockList{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := capture(t, &os.Stdout, func() {
				require.NoError(t, formatter.Success(tt.data))
			})
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestOutputFormatter_Success_QuietBeatsJSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true, Quiet: true}
	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Success(mockDataWithID{ID: 5}))
	})
	assert.Equal(t, "5\n", output)
}

func TestOutputFormatter_Success_QuietWithoutIDFallsThrough(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}
	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Success("plain"))
	})
	assert.Equal(t, "plain\n", output)
}

func TestOutputFormatter_Success_HumanUsesRenderer(t *testing.T) {
	formatter := NewOutputFormatter(false, false, config.Default())
	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Success(mockRenderer{Name: "Books"}))
	})
	assert.Equal(t, "rendered Books 1.00\n", output)
}

// ============================================================================
// Error
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"not found", &NotFoundError{Entity: "department", ID: 9}, "NOT_FOUND"},
		{"integrity", &database.IntegrityError{Message: "cannot delete department 1: referenced by other records"}, "INTEGRITY_ERROR"},
		{"store", &database.StoreError{Op: "insert seller", Err: errors.New("boom")}, "STORE_ERROR"},
		{"usage", Usagef("--id is required"), "USAGE_ERROR"},
		{"plain", errors.New("boom"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			output := capture(t, &os.Stdout, func() {
				require.NoError(t, formatter.Error(tt.err))
			})

			var result map[string]any
			require.NoError(t, json.Unmarshal([]byte(output), &result))
			assert.Equal(t, false, result["success"])

			errData, ok := result["error"].(map[string]any)
			require.True(t, ok, "error payload missing: %s", output)
			assert.Equal(t, tt.wantCode, errData["code"])
			assert.Equal(t, tt.err.Error(), errData["message"])
		})
	}
}

func TestOutputFormatter_Error_JSONValidationFields(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	err := &validation.ValidationError{Fields: map[string]string{
		"name":  validation.MsgEmpty,
		"email": validation.MsgInvalidValue,
	}}

	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Error(err))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	errData := result["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])
	assert.Equal(t, map[string]any{
		"name":  validation.MsgEmpty,
		"email": validation.MsgInvalidValue,
	}, errData["fields"])
}

func TestOutputFormatter_Error_HumanListsEveryField(t *testing.T) {
	formatter := &OutputFormatter{}
	err := &validation.ValidationError{Fields: map[string]string{
		"name":       validation.MsgEmpty,
		"baseSalary": validation.MsgNotPositive,
	}}

	var stdout string
	stderr := capture(t, &os.Stderr, func() {
		stdout = capture(t, &os.Stdout, func() {
			require.NoError(t, formatter.Error(err))
		})
	})

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Validation failed")
	assert.Contains(t, stderr, "name:")
	assert.Contains(t, stderr, validation.MsgEmpty)
	assert.Contains(t, stderr, "baseSalary:")
	assert.Contains(t, stderr, validation.MsgNotPositive)
	assert.Less(t, strings.Index(stderr, "baseSalary"), strings.Index(stderr, "name:"))
}

func TestOutputFormatter_Error_HumanVerbatim(t *testing.T) {
	formatter := &OutputFormatter{}
	stderr := capture(t, &os.Stderr, func() {
		require.NoError(t, formatter.Error(errors.New("disk is on fire")))
	})
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "disk is on fire")
}

func TestOutputFormatter_Error_Nil(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := capture(t, &os.Stdout, func() {
		require.NoError(t, formatter.Error(nil))
	})
	assert.Empty(t, output)
}
