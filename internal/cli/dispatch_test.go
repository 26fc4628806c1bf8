package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"taskmgr/internal/cli"
	"taskmgr/internal/commands"
	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/prompt"
	"taskmgr/internal/session"
	"taskmgr/internal/testutil"
)

type fixture struct {
	dir  string
	svc  *testutil.FakeService
	auth *testutil.FakeAuthenticator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvRateLimit, "")

	auth := testutil.NewFakeAuthenticator()
	auth.Accounts["ann@example.com"] = "secret1"
	return &fixture{
		dir:  t.TempDir(),
		svc:  testutil.NewFakeService(),
		auth: auth,
	}
}

// factory builds an App backed by the fakes, restoring the session
// from the fixture's config directory like the real binary does.
func (f *fixture) factory(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*commands.App, error) {
	mgr := session.NewManager(session.NewStore(cfg.TokenPath()), f.auth, log)
	mgr.Restore()
	return &commands.App{
		Config:  cfg,
		Session: mgr,
		Tasks:   f.svc,
		Prompt:  prompt.New(strings.NewReader(""), &bytes.Buffer{}),
		Log:     log,
	}, nil
}

func (f *fixture) run(args ...string) (int, string, string) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, f.factory)

	var stdout, stderr bytes.Buffer
	if len(args) > 0 {
		args = append(args, "--config", f.dir)
	}
	code := dispatcher.Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	f := newFixture(t)
	code, _, stderr := f.run("unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	f := newFixture(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, f.factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	f := newFixture(t)
	code, stdout, stderr := f.run("help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "login", "register", "logout", "add"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected help output to contain %q", want)
		}
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	f := newFixture(t)
	code, stdout, stderr := f.run("version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskmgr 0.1.0\n" {
		t.Errorf("expected 'taskmgr 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	f := newFixture(t)
	code, _, stderr := f.run("help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_ProtectedCommandRedirectsToLogin(t *testing.T) {
	for _, name := range []string{"list", "add", "edit", "rm", "toggle"} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			code, stdout, stderr := f.run(name)

			if code != exitcode.AuthError {
				t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
			}
			if stderr != cli.LoginHint+"\n" {
				t.Errorf("expected %q, got %q", cli.LoginHint+"\n", stderr)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if f.svc.TotalCalls() != 0 {
				t.Errorf("expected no backend calls, got %d", f.svc.TotalCalls())
			}
		})
	}
}

func TestDispatcher_NoArgsRedirectsToLogin(t *testing.T) {
	f := newFixture(t)
	t.Setenv("XDG_CONFIG_HOME", f.dir)
	code, _, stderr := f.run()

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != cli.LoginHint+"\n" {
		t.Errorf("expected %q, got %q", cli.LoginHint+"\n", stderr)
	}
}

func TestDispatcher_PublicCommandsWithoutSession(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"help", "version", "whoami", "logout"} {
		code, _, stderr := f.run(name)
		if code != exitcode.Success {
			t.Errorf("%s: expected exit code %d, got %d (stderr %q)", name, exitcode.Success, code, stderr)
		}
	}
}

func TestDispatcher_LoginThenDashboard(t *testing.T) {
	f := newFixture(t)
	f.svc.AddTask("a1", "Buy milk", "2%", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	code, stdout, stderr := f.run("login", "-e", "ann@example.com", "-p", "secret1")
	if code != exitcode.Success {
		t.Fatalf("login: expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "Login successful!") {
		t.Errorf("expected login notice, got %q", stdout)
	}

	// The stored token survives into the next invocation.
	code, stdout, stderr = f.run("list")
	if code != exitcode.Success {
		t.Fatalf("list: expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "Buy milk") {
		t.Errorf("expected dashboard to list the task, got %q", stdout)
	}
}

func TestDispatcher_LogoutLocksDashboard(t *testing.T) {
	f := newFixture(t)

	if code, _, stderr := f.run("login", "-e", "ann@example.com", "-p", "secret1"); code != exitcode.Success {
		t.Fatalf("login failed: %d %q", code, stderr)
	}
	code, stdout, _ := f.run("logout")
	if code != exitcode.Success {
		t.Fatalf("logout: expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Logout Success\n" {
		t.Errorf("expected %q, got %q", "Logout Success\n", stdout)
	}

	code, _, stderr := f.run("list")
	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != cli.LoginHint+"\n" {
		t.Errorf("expected %q, got %q", cli.LoginHint+"\n", stderr)
	}
}

func TestDispatcher_InvalidEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv(config.EnvTimeout, "soon")

	code, _, stderr := f.run("version")
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid TASKMGR_TIMEOUT: soon\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	f := newFixture(t)
	code, stdout, stderr := f.run("version", "--debug")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "taskmgr 0.1.0\n" {
		t.Errorf("debug output leaked to stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "dispatch") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}
