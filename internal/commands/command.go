// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command calls the API.
	// Commands like help and version return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Parse validates positional arguments and flag values after flag
	// parsing. It runs before configuration is loaded, so a failure here
	// never reaches the network.
	Parse(args []string) error

	// Run executes the command.
	// cfg is always provided.
	// svc is nil if NeedsAuth() returns false.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int
}
