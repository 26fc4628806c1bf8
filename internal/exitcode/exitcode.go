// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, failed validation, unknown task).
	UserError = 1

	// AuthError indicates a login failure or a missing/rejected session.
	AuthError = 2

	// BackendError indicates an API or network error.
	BackendError = 3
)
