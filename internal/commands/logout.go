package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskmgr/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove the stored session token" }
func (c *LogoutCmd) Usage() string     { return "taskmgr logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if !app.Session.Authenticated() && !app.Config.HasToken() {
		notify(app, out, "not logged in")
		return exitcode.Success
	}

	if err := app.Session.Logout(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	notify(app, out, "Logout Success")
	return exitcode.Success
}
