package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/form"
	"taskmgr/internal/output"
	"taskmgr/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// optionalString is a string flag that records whether it was given.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// EditCmd implements the edit command.
// Fields not given on the command line keep their current values.
type EditCmd struct {
	title       optionalString
	description optionalString
	due         optionalString
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(s string) { c.title.Set(s) }

// SetDescription sets the new description (for testing).
func (c *EditCmd) SetDescription(s string) { c.description.Set(s) }

// SetDue sets the new due date (for testing).
func (c *EditCmd) SetDue(s string) { c.due.Set(s) }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskmgr edit [--title <text>] [--description <text>] [--due <YYYY-MM-DD>] <ref>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title, c.description, c.due = optionalString{}, optionalString{}, optionalString{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.due, "due", "")
}

func (c *EditCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	_, task, code, ok := lookupTask(ctx, app, args, errOut)
	if !ok {
		return code
	}

	// Start from the task's current values, as the edit dialog does.
	f := form.Task{
		Title:       task.Title,
		Description: task.Description,
	}
	if !task.DueDate.IsZero() {
		f.DueDate = task.DueDate.Format(output.DateLayout)
	}
	if c.title.set {
		f.Title = c.title.value
	}
	if c.description.set {
		f.Description = c.description.value
	}
	if c.due.set {
		f.DueDate = c.due.value
	}
	if err := f.Validate(); err != nil {
		return reportFormErrors(errOut, err)
	}

	err := app.Tasks.UpdateTask(ctx, task.ID, service.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.Due(),
		Status:      task.Status,
	})
	if err != nil {
		return reportBackendError(errOut, err)
	}

	notify(app, out, "Task updated successfully")
	return refreshDashboard(ctx, app, out, errOut)
}
