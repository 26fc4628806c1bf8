// Package main is the entry point for the taskmgr CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"taskmgr/internal/backend/todoapi"
	"taskmgr/internal/cli"
	"taskmgr/internal/commands"
	"taskmgr/internal/config"
	"taskmgr/internal/prompt"
	"taskmgr/internal/session"
)

func main() {
	// A .env in the working directory may set TASKMGR_* variables.
	_ = godotenv.Load()

	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newApp)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// newApp wires the session, the API client and the prompter.
// The client reads its token from the session, and the session
// authenticates through the client.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*commands.App, error) {
	mgr := session.NewManager(session.NewStore(cfg.TokenPath()), nil, log)

	client, err := todoapi.New(cfg, mgr, log)
	if err != nil {
		return nil, err
	}
	mgr.SetAuthenticator(client)
	mgr.Restore()

	return &commands.App{
		Config:  cfg,
		Session: mgr,
		Tasks:   client,
		Prompt:  prompt.New(os.Stdin, os.Stderr),
		Log:     log,
	}, nil
}
