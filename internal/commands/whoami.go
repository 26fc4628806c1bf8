package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskmgr/internal/exitcode"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd implements the whoami command.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the session state" }
func (c *WhoamiCmd) Usage() string     { return "taskmgr whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if !app.Session.Authenticated() {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}

	fmt.Fprintln(out, "logged in")
	fmt.Fprintf(out, "api: %s\n", app.Config.APIURL)

	claims, ok := app.Session.Claims()
	if !ok {
		return exitcode.Success
	}
	if claims.Subject != "" {
		fmt.Fprintf(out, "user: %s\n", claims.Subject)
	}
	if !claims.IssuedAt.IsZero() {
		fmt.Fprintf(out, "issued: %s\n", claims.IssuedAt.UTC().Format(time.RFC3339))
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "expires: %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return exitcode.Success
}
