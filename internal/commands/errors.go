package commands

import (
	"errors"
	"fmt"
	"io"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/priority"
	"todoist/internal/service"
)

var (
	// ErrUnknownCommand indicates a command token with no registered command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArguments indicates missing, extra or malformed arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// argError is an ErrInvalidArguments with its own message.
type argError struct {
	msg string
}

func (e *argError) Error() string        { return e.msg }
func (e *argError) Is(target error) bool { return target == ErrInvalidArguments }

func invalidArgs(format string, a ...any) error {
	return &argError{msg: fmt.Sprintf(format, a...)}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, config.ErrMissingToken), errors.Is(err, service.ErrAuth):
		return exitcode.AuthError
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrInvalidArguments),
		errors.Is(err, priority.ErrInvalidPriority),
		errors.Is(err, service.ErrNotFound):
		return exitcode.UserError
	default:
		return exitcode.BackendError
	}
}

// ReportError prints err as a single line on errOut, with a hint for
// configuration problems, and returns the matching exit code.
func ReportError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	switch {
	case errors.Is(err, config.ErrMissingToken):
		fmt.Fprintf(errOut, "set it with: export %s='your-api-key'\n", config.TokenEnv)
	case errors.Is(err, service.ErrAuth):
		fmt.Fprintf(errOut, "check that %s holds a valid API token\n", config.TokenEnv)
	}
	return ExitCode(err)
}

// reportTaskError is ReportError with a task-specific not-found message.
func reportTaskError(errOut io.Writer, taskID string, err error) int {
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintf(errOut, "error: task not found: %s\n", taskID)
		return exitcode.UserError
	}
	return ReportError(errOut, err)
}
