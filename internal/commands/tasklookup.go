package commands

import (
	"context"
	"fmt"
	"io"

	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
)

// lookupTask parses the task reference in args, fetches the listing and
// resolves the reference against it. On failure it prints the error and
// returns ok=false with the exit code to use.
func lookupTask(ctx context.Context, app *App, args []string, errOut io.Writer) (tasks []service.Task, task service.Task, code int, ok bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, service.Task{}, exitcode.UserError, false
	}

	tasks, err = app.Tasks.ListTasks(ctx)
	if err != nil {
		return nil, service.Task{}, reportBackendError(errOut, err), false
	}

	task, err = ref.Resolve(tasks)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, service.Task{}, exitcode.UserError, false
	}

	app.Log.Debug().Str("task", task.ID).Msg("resolved task reference")
	return tasks, task, exitcode.Success, true
}
