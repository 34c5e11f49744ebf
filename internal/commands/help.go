package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todoist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Parse(args []string) error { return nil }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todoist tasks [-p <project-name>]          List active tasks (aliases: ls, list)
  todoist projects                           List projects (alias: proj)
  todoist add <content...> [-d <due>] [-P <1-4>] [--project-id <id>]
                                             Add a task (aliases: new, create)
  todoist complete <task-id>                 Complete a task (aliases: done, close, finish)
  todoist delete <task-id>                   Delete a task (aliases: rm, remove)
  todoist get <task-id>                      Show task details (aliases: show, view)
  todoist update <task-id> [-c <content>] [-d <due>] [-P <1-4>] [--description <text>]
                                             Update a task (aliases: edit, modify)
  todoist help
  todoist version

Priority:
  4 = P1 (highest), 3 = P2, 2 = P3, 1 = P4 (normal, default)

Common flags:
  --config <dir>   Override config directory
  -q, --quiet      Suppress confirmation messages
  --debug          Print debug logs to stderr
  --json           Print raw JSON

Environment:
  TODOIST_API_KEY  Required. Your Todoist API token.
  TODOIST_API_URL  Override the API base URL.
`
