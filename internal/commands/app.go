package commands

import (
	"github.com/rs/zerolog"

	"taskmgr/internal/config"
	"taskmgr/internal/prompt"
	"taskmgr/internal/service"
	"taskmgr/internal/session"
)

// App carries the dependencies a command runs against.
type App struct {
	// Config holds paths and settings; never nil.
	Config *config.Config

	// Session is the authentication state; never nil.
	Session *session.Manager

	// Tasks is the task backend.
	Tasks service.Service

	// Prompt reads missing credentials. nil disables prompting.
	Prompt *prompt.Prompter

	// Log receives diagnostics.
	Log zerolog.Logger
}

