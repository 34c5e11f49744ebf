package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/service"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct {
	taskID string
}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done", "close", "finish"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "todoist complete <task-id>" }
func (c *CompleteCmd) NeedsAuth() bool   { return true }

func (c *CompleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *CompleteCmd) Parse(args []string) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	if err := svc.CompleteTask(ctx, c.taskID); err != nil {
		return reportTaskError(errOut, c.taskID, err)
	}

	if cfg.JSON {
		return writeJSON(out, errOut, map[string]any{"id": c.taskID, "completed": true})
	}
	if !cfg.Quiet {
		output.Completed(out, c.taskID)
	}
	return exitcode.Success
}
