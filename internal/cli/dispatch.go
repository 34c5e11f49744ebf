// Package cli resolves the command, parses flags and dispatches.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"todoist/internal/commands"
	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/logging"
	"todoist/internal/service"
)

const usageHint = "run 'todoist help' for usage"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run resolves the command in args[0], parses the rest and runs it.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> usage
	if len(args) == 0 {
		return d.dispatch(ctx, "help", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command, except top-level help and version
	if strings.HasPrefix(cmdName, "-") {
		switch cmdName {
		case "-h", "--help":
			return d.dispatch(ctx, "help", nil, out, errOut)
		case "--version":
			return d.dispatch(ctx, "version", nil, out, errOut)
		}
		fmt.Fprintf(errOut, "error: unknown command: %s\n%s\n", cmdName, usageHint)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, err := d.registry.Resolve(cmdName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n%s\n", err, usageHint)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet, debug, jsonOut bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVarP(&quiet, "quiet", "q", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&jsonOut, "json", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Validate arguments before touching config or network
	if err := cmd.Parse(fs.Args()); err != nil {
		code := commands.ReportError(errOut, err)
		fmt.Fprintf(errOut, "usage: %s\n", cmd.Usage())
		return code
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		if cmd.NeedsAuth() {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.AuthError
		}
		// help and version run without a usable config.yaml
		cfg, _ = config.New(configDir)
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.JSON = jsonOut

	logger := logging.New(errOut, debug)
	logger.WithFields(log.Fields{
		"command": cmd.Name(),
		"api_url": cfg.APIURL,
	}).Debug("dispatch")

	var svc service.Service
	if cmd.NeedsAuth() {
		// Fail before any service exists so no request can be sent
		if err := cfg.RequireToken(); err != nil {
			return commands.ReportError(errOut, err)
		}
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no backend configured")
			return exitcode.BackendError
		}
		svc, err = d.factory(ctx, cfg, logger)
		if err != nil {
			return commands.ReportError(errOut, err)
		}
	}

	return cmd.Run(ctx, cfg, svc, out, errOut)
}
