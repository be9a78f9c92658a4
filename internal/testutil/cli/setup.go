// Package cli holds test helpers for command packages. It is separate from
// testutil so service tests can use testutil without importing the CLI.
package cli

import (
	"testing"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// SetupCLITest returns an App over a fresh in-memory store
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// CreateTestDepartment wraps testutil.CreateTestDepartment for CLI tests
func CreateTestDepartment(t *testing.T, a *app.App, name string) int {
	t.Helper()
	return testutil.CreateTestDepartment(t, a, name)
}

// CreateTestSeller wraps testutil.CreateTestSeller for CLI tests
func CreateTestSeller(t *testing.T, a *app.App, departmentID int, name string) int {
	t.Helper()
	return testutil.CreateTestSeller(t, a, departmentID, name)
}
