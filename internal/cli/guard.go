package cli

import (
	"fmt"
	"io"

	"taskmgr/internal/commands"
	"taskmgr/internal/exitcode"
)

// LoginHint is printed when a protected command runs without a session.
const LoginHint = "error: not logged in (run: taskmgr login)"

// guard lets cmd run only if it is public or the session is authenticated.
// A refused command is redirected to login with exit code AuthError.
func guard(cmd commands.Command, app *commands.App, errOut io.Writer) (int, bool) {
	if !cmd.NeedsAuth() {
		return exitcode.Success, true
	}
	// Decide only once the stored token has been read.
	if app.Session.Loading() {
		app.Session.Restore()
	}
	if app.Session.Authenticated() {
		return exitcode.Success, true
	}
	app.Log.Debug().Str("command", cmd.Name()).Msg("no session, redirecting to login")
	fmt.Fprintln(errOut, LoginHint)
	return exitcode.AuthError, false
}
