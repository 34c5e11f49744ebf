package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/priority"
	"todoist/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
// Only flags given on the command line are sent.
type UpdateCmd struct {
	flags       *pflag.FlagSet
	content     string
	due         string
	description string
	prio        string

	taskID string
	update service.TaskUpdate
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit", "modify"} }
func (c *UpdateCmd) Synopsis() string  { return "Update an existing task" }
func (c *UpdateCmd) Usage() string {
	return "todoist update <task-id> [-c <content>] [-d <due>] [-P <1-4>] [--description <text>]"
}
func (c *UpdateCmd) NeedsAuth() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.StringVarP(&c.content, "content", "c", "", "")
	fs.StringVarP(&c.due, "due", "d", "", "")
	fs.StringVarP(&c.prio, "priority", "P", "", "")
	fs.StringVar(&c.description, "description", "", "")
}

func (c *UpdateCmd) Parse(args []string) error {
	id, err := ParseTaskID(args)
	if err != nil {
		return err
	}
	c.taskID = id
	c.update = service.TaskUpdate{}

	if c.changed("content") {
		if strings.TrimSpace(c.content) == "" {
			return invalidArgs("task content cannot be empty")
		}
		content := c.content
		c.update.Content = &content
	}
	if c.changed("due") {
		due := strings.TrimSpace(c.due)
		c.update.DueString = &due
	}
	if c.changed("description") {
		description := c.description
		c.update.Description = &description
	}
	if c.changed("priority") {
		p, err := priority.Parse(c.prio)
		if err != nil {
			return err
		}
		c.update.Priority = p
	}

	if c.update.IsEmpty() {
		return invalidArgs("no updates specified; use --content, --due, --description or --priority")
	}
	return nil
}

func (c *UpdateCmd) changed(name string) bool {
	return c.flags != nil && c.flags.Changed(name)
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	task, err := svc.UpdateTask(ctx, c.taskID, c.update)
	if err != nil {
		return reportTaskError(errOut, c.taskID, err)
	}

	if cfg.JSON {
		return writeJSON(out, errOut, task)
	}
	if !cfg.Quiet {
		output.Updated(out, c.taskID)
		output.TaskDetail(out, task)
	}
	return exitcode.Success
}
