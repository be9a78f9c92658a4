package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// Result is what a command run produced
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode maps the returned error the way the root command does
func (r Result) ExitCode() int {
	return cli.ExitCodeFor(r.Err)
}

// ExecuteCLICommand executes a CLI command against testApp. Commands pick
// the app up through cli.GetCLIFromContext and leave it open afterwards.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content, for
// confirmation prompts
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := cli.WithApp(context.Background(), testApp)

	testutil.SetupCobraCommand(cmd, args)
	cmd.SetIn(strings.NewReader(stdin))

	var res Result
	res.Stderr = testutil.CaptureStderr(t, func() {
		res.Stdout = testutil.CaptureOutput(t, func() {
			res.Err = cmd.ExecuteContext(ctx)
		})
	})

	return res
}
