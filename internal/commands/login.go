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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

// SetCredentials sets the email and password (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in to the Task Manager API" }
func (c *LoginCmd) Usage() string {
	return "taskmgr login [common flags] [--email <email>] [--password <password>]"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if app.Session.Authenticated() {
		notify(app, out, "already logged in")
		return exitcode.Success
	}

	f := form.Login{Email: c.email, Password: c.password}
	if err := fillFromPrompt(app, &f.Email, "Email", false); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := fillFromPrompt(app, &f.Password, "Password", true); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := f.Validate(); err != nil {
		return reportFormErrors(errOut, err)
	}

	if err := app.Session.Login(ctx, f.Email, f.Password); err != nil {
		return reportAuthError(errOut, err)
	}

	notify(app, out, "Login successful!")
	return refreshDashboard(ctx, app, out, errOut)
}

// fillFromPrompt asks for *dst when it is empty and a prompter is available.
func fillFromPrompt(app *App, dst *string, label string, secret bool) error {
	if *dst != "" || app.Prompt == nil {
		return nil
	}
	var (
		v   string
		err error
	)
	if secret {
		v, err = app.Prompt.Password(label)
	} else {
		v, err = app.Prompt.Line(label)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", label, err)
	}
	*dst = v
	return nil
}
