package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/exitcode"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskmgr` (no args) and `taskmgr list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"dashboard"} }
func (c *ListCmd) Synopsis() string  { return "Show the task dashboard" }
func (c *ListCmd) Usage() string     { return "taskmgr list" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	tasks, err := app.Tasks.ListTasks(ctx)
	if err != nil {
		return reportBackendError(errOut, err)
	}
	renderDashboard(app, out, tasks)
	return exitcode.Success
}
