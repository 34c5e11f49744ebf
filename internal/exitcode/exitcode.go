// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (unknown command, bad args, invalid
	// priority, task or project not found).
	UserError = 1

	// AuthError indicates a configuration or auth error (missing
	// TODOIST_API_KEY, rejected token).
	AuthError = 2

	// BackendError indicates a network, rate limit, server or response error.
	BackendError = 3
)
