package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskmgr/internal/exitcode"
	"taskmgr/internal/form"
	"taskmgr/internal/output"
	"taskmgr/internal/service"
)

// DashboardTitle heads the task listing.
const DashboardTitle = "Dashboard"

// notify prints an informational message unless --quiet is set.
func notify(app *App, out io.Writer, msg string) {
	if !app.Config.Quiet {
		fmt.Fprintln(out, msg)
	}
}

// renderDashboard prints the task listing.
func renderDashboard(app *App, out io.Writer, tasks []service.Task) {
	output.FormatHeader(out, DashboardTitle)
	if len(tasks) == 0 {
		if !app.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return
	}
	output.FormatTasks(out, tasks)
}

// refreshDashboard re-fetches all tasks and renders them unless --quiet is set.
func refreshDashboard(ctx context.Context, app *App, out, errOut io.Writer) int {
	tasks, err := app.Tasks.ListTasks(ctx)
	if err != nil {
		return reportBackendError(errOut, err)
	}
	if !app.Config.Quiet {
		renderDashboard(app, out, tasks)
	}
	return exitcode.Success
}

// reportBackendError prints a task API failure and returns its exit code.
func reportBackendError(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrUnauthorized) {
		fmt.Fprintln(errOut, "error: auth error: session rejected by server (run: taskmgr login)")
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

// reportAuthError prints a failed login or registration. A server rejection
// carries its own message and exits AuthError; anything else is a backend
// failure.
func reportAuthError(errOut io.Writer, err error) int {
	if !errors.Is(err, service.ErrRejected) {
		return reportBackendError(errOut, err)
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.AuthError
}

// reportFormErrors prints one line per invalid field.
func reportFormErrors(errOut io.Writer, err error) int {
	var errs form.Errors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			fmt.Fprintf(errOut, "error: %s: %s\n", fe.Field, fe.Message)
		}
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
