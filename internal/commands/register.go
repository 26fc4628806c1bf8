package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskmgr/internal/exitcode"
	"taskmgr/internal/form"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	username string
	email    string
	password string
}

// SetCredentials sets the account fields (for testing).
func (c *RegisterCmd) SetCredentials(username, email, password string) {
	c.username = username
	c.email = email
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and log in" }
func (c *RegisterCmd) Usage() string {
	return "taskmgr register [common flags] [--username <name>] [--email <email>] [--password <password>]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if app.Session.Authenticated() {
		notify(app, out, "already logged in")
		return exitcode.Success
	}

	f := form.Register{Username: c.username, Email: c.email, Password: c.password}
	for _, field := range []struct {
		dst    *string
		label  string
		secret bool
	}{
		{&f.Username, "Username", false},
		{&f.Email, "Email", false},
		{&f.Password, "Password", true},
	} {
		if err := fillFromPrompt(app, field.dst, field.label, field.secret); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if err := f.Validate(); err != nil {
		return reportFormErrors(errOut, err)
	}

	if err := app.Session.Register(ctx, f.Username, f.Email, f.Password); err != nil {
		return reportAuthError(errOut, err)
	}

	notify(app, out, "Register successful!")
	return refreshDashboard(ctx, app, out, errOut)
}
