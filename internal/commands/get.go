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
	Register(&GetCmd{})
}

// GetCmd implements the get command.
type GetCmd struct {
	taskID string
}

func (c *GetCmd) Name() string      { return "get" }
func (c *GetCmd) Aliases() []string { return []string{"show", "view"} }
func (c *GetCmd) Synopsis() string  { return "Show task details" }
func (c *GetCmd) Usage() string     { return "todoist get <task-id>" }
func (c *GetCmd) NeedsAuth() bool   { return true }

func (c *GetCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *GetCmd) Parse(args []string) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *GetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	task, err := svc.GetTask(ctx, c.taskID)
	if err != nil {
		return reportTaskError(errOut, c.taskID, err)
	}

	if cfg.JSON {
		return writeJSON(out, errOut, task)
	}
	output.TaskDetail(out, task)
	return exitcode.Success
}
