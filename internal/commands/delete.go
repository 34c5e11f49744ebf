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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct {
	taskID string
}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm", "remove"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "todoist delete <task-id>" }
func (c *DeleteCmd) NeedsAuth() bool   { return true }

func (c *DeleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *DeleteCmd) Parse(args []string) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	if err := svc.DeleteTask(ctx, c.taskID); err != nil {
		return reportTaskError(errOut, c.taskID, err)
	}

	if cfg.JSON {
		return writeJSON(out, errOut, map[string]any{"id": c.taskID, "deleted": true})
	}
	if !cfg.Quiet {
		output.Deleted(out, c.taskID)
	}
	return exitcode.Success
}
