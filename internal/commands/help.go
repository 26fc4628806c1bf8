package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskmgr/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskmgr help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, app *App, args []string, out, errOut io.Writer) int {
	writeHelp(out, DefaultRegistry)
	return exitcode.Success
}

// writeHelp prints usage with one line per registered command.
func writeHelp(w io.Writer, r *Registry) {
	fmt.Fprint(w, "Usage:\n  taskmgr [command] [common flags] [args]\n\nCommands:\n")
	for _, cmd := range r.All() {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %-22s %s\n", name, cmd.Synopsis())
		fmt.Fprintf(w, "  %-22s %s\n", "", cmd.Usage())
	}
	fmt.Fprint(w, helpFooter)
}

const helpFooter = `
With no command, taskmgr shows the dashboard.
<ref> is a task number from the dashboard or a task id.
Missing login and register fields are prompted for.

Common flags:
  --config <dir>     Override config directory
  --api-url <url>    Override the Task Manager API URL
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr

Environment:
  TASKMGR_API_URL, TASKMGR_TIMEOUT, TASKMGR_RATE_LIMIT (also read from ./.env)
`
