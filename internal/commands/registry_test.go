package commands_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/spf13/pflag"

	"todoist/internal/commands"
	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/service"
)

type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                    { return c.name }
func (c *stubCmd) Aliases() []string               { return c.aliases }
func (c *stubCmd) Synopsis() string                { return "" }
func (c *stubCmd) Usage() string                   { return "todoist " + c.name }
func (c *stubCmd) NeedsAuth() bool                 { return false }
func (c *stubCmd) RegisterFlags(fs *pflag.FlagSet) {}
func (c *stubCmd) Parse(args []string) error       { return nil }
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	return exitcode.Success
}

func TestDefaultRegistry_Aliases(t *testing.T) {
	tests := map[string]string{
		"tasks":    "tasks",
		"ls":       "tasks",
		"list":     "tasks",
		"projects": "projects",
		"proj":     "projects",
		"add":      "add",
		"new":      "add",
		"create":   "add",
		"complete": "complete",
		"done":     "complete",
		"close":    "complete",
		"finish":   "complete",
		"delete":   "delete",
		"rm":       "delete",
		"remove":   "delete",
		"get":      "get",
		"show":     "get",
		"view":     "get",
		"update":   "update",
		"edit":     "update",
		"modify":   "update",
		"help":     "help",
		"version":  "version",
	}

	for token, want := range tests {
		cmd, err := commands.DefaultRegistry.Resolve(token)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", token, err)
			continue
		}
		if cmd.Name() != want {
			t.Errorf("Resolve(%q) = %s, want %s", token, cmd.Name(), want)
		}
	}

	if got := len(commands.DefaultRegistry.Tokens()); got != len(tests) {
		t.Errorf("expected %d tokens, got %d: %v", len(tests), got, commands.DefaultRegistry.Tokens())
	}
	if got := len(commands.DefaultRegistry.All()); got != 9 {
		t.Errorf("expected 9 commands, got %d", got)
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	for _, token := range []string{"unknowncmd", "LS", "Tasks", ""} {
		_, err := commands.DefaultRegistry.Resolve(token)
		if !errors.Is(err, commands.ErrUnknownCommand) {
			t.Errorf("Resolve(%q): expected ErrUnknownCommand, got %v", token, err)
		}
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&stubCmd{name: "tasks", aliases: []string{"ls"}}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := r.Register(&stubCmd{name: "tasks"}); err == nil {
		t.Error("expected error for duplicate name")
	}
	if err := r.Register(&stubCmd{name: "other", aliases: []string{"ls"}}); err == nil {
		t.Error("expected error for duplicate alias")
	}
	if err := r.Register(&stubCmd{name: "self", aliases: []string{"self"}}); err == nil {
		t.Error("expected error for alias equal to name")
	}
	if _, ok := r.Find("other"); ok {
		t.Error("rejected command should not be registered")
	}
}
