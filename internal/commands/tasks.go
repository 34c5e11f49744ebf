package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/service"
)

func init() {
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command.
type TasksCmd struct {
	project string
}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return []string{"ls", "list"} }
func (c *TasksCmd) Synopsis() string  { return "List active tasks" }
func (c *TasksCmd) Usage() string     { return "todoist tasks [-p <project-name>]" }
func (c *TasksCmd) NeedsAuth() bool   { return true }

func (c *TasksCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.project, "project", "p", "", "")
}

func (c *TasksCmd) Parse(args []string) error {
	if len(args) > 0 {
		return invalidArgs("unexpected argument: %s", args[0])
	}
	return nil
}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	var filter service.TaskFilter

	// Resolve project filter; an unknown name falls back to all tasks
	if name := strings.TrimSpace(c.project); name != "" {
		project, err := svc.ResolveProject(ctx, name)
		switch {
		case err == nil:
			filter.ProjectID = project.ID
		case errors.Is(err, service.ErrNotFound):
			fmt.Fprintf(errOut, "warning: project not found: %s; showing all tasks\n", name)
		default:
			return ReportError(errOut, err)
		}
	}

	tasks, err := svc.ListTasks(ctx, filter)
	if err != nil {
		return ReportError(errOut, err)
	}

	if cfg.JSON {
		if tasks == nil {
			tasks = []service.Task{}
		}
		return writeJSON(out, errOut, tasks)
	}

	if len(tasks) == 0 {
		// Printed even with --quiet
		fmt.Fprintln(out, output.NoTasksMessage)
		return exitcode.Success
	}

	output.TaskTable(out, tasks)
	return exitcode.Success
}

// writeJSON writes v as JSON and returns the exit code.
func writeJSON(out, errOut io.Writer, v any) int {
	if err := output.JSON(out, v); err != nil {
		fmt.Fprintf(errOut, "error: encode output: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
