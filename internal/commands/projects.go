package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/service"
)

func init() {
	Register(&ProjectsCmd{})
}

// ProjectsCmd implements the projects command.
type ProjectsCmd struct{}

func (c *ProjectsCmd) Name() string      { return "projects" }
func (c *ProjectsCmd) Aliases() []string { return []string{"proj"} }
func (c *ProjectsCmd) Synopsis() string  { return "List all projects" }
func (c *ProjectsCmd) Usage() string     { return "todoist projects" }
func (c *ProjectsCmd) NeedsAuth() bool   { return true }

func (c *ProjectsCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ProjectsCmd) Parse(args []string) error {
	if len(args) > 0 {
		return invalidArgs("unexpected argument: %s", args[0])
	}
	return nil
}

func (c *ProjectsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		return ReportError(errOut, err)
	}

	if cfg.JSON {
		if projects == nil {
			projects = []service.Project{}
		}
		return writeJSON(out, errOut, projects)
	}

	if len(projects) == 0 {
		// Printed even with --quiet
		fmt.Fprintln(out, output.NoProjectsMessage)
		return exitcode.Success
	}

	output.ProjectList(out, projects)
	return exitcode.Success
}
