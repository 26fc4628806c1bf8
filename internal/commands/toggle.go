package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command: pending ↔ completed.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Flip a task between pending and completed" }
func (c *ToggleCmd) Usage() string     { return "taskmgr toggle <ref>" }
func (c *ToggleCmd) NeedsAuth() bool   { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	_, task, code, ok := lookupTask(ctx, app, args, errOut)
	if !ok {
		return code
	}

	in := task.Input()
	in.Status = service.ToggleStatus(task.Status)
	if err := app.Tasks.UpdateTask(ctx, task.ID, in); err != nil {
		return reportBackendError(errOut, err)
	}

	notify(app, out, "Status updated")
	return refreshDashboard(ctx, app, out, errOut)
}
