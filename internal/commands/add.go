package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskmgr/internal/exitcode"
	"taskmgr/internal/form"
	"taskmgr/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	due         string
}

// SetFields sets the description and due date (for testing).
func (c *AddCmd) SetFields(description, due string) {
	c.description = description
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskmgr add --description <text> --due <YYYY-MM-DD> <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	f := form.Task{
		Title:       strings.Join(args, " "),
		Description: c.description,
		DueDate:     c.due,
	}
	if err := f.Validate(); err != nil {
		return reportFormErrors(errOut, err)
	}

	task, err := app.Tasks.CreateTask(ctx, service.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.Due(),
	})
	if err != nil {
		return reportBackendError(errOut, err)
	}

	notify(app, out, "Task added successfully")
	if app.Config.Quiet {
		return exitcode.Success
	}

	// The task exists now; a failed listing only costs the dashboard.
	tasks, err := app.Tasks.ListTasks(ctx)
	if err != nil {
		app.Log.Debug().Err(err).Str("task", task.ID).Msg("failed to load dashboard after add")
		fmt.Fprintf(errOut, "warning: task added but dashboard not refreshed: %v\n", err)
		return exitcode.Success
	}
	renderDashboard(app, out, withTask(tasks, task))
	return exitcode.Success
}

// withTask returns tasks with task appended unless the listing already has it.
func withTask(tasks []service.Task, task service.Task) []service.Task {
	for _, t := range tasks {
		if t.ID == task.ID {
			return tasks
		}
	}
	return append(tasks, task)
}
