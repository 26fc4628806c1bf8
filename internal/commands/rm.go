package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskmgr rm <ref>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	tasks, task, code, ok := lookupTask(ctx, app, args, errOut)
	if !ok {
		return code
	}

	if err := app.Tasks.DeleteTask(ctx, task.ID); err != nil {
		return reportBackendError(errOut, err)
	}

	notify(app, out, "Task deleted successfully")
	if !app.Config.Quiet {
		renderDashboard(app, out, withoutTask(tasks, task.ID))
	}
	return exitcode.Success
}

// withoutTask returns tasks minus the one with id, preserving order.
func withoutTask(tasks []service.Task, id string) []service.Task {
	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}
