package commands

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"todoist/internal/config"
	"todoist/internal/exitcode"
	"todoist/internal/output"
	"todoist/internal/priority"
	"todoist/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due       string
	prio      string
	projectID string

	task service.NewTask
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new", "create"} }
func (c *AddCmd) Synopsis() string  { return "Add a new task" }
func (c *AddCmd) Usage() string {
	return "todoist add <content...> [-d <due>] [-P <1-4>] [--project-id <id>]"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.due, "due", "d", "", "")
	fs.StringVarP(&c.prio, "priority", "P", strconv.Itoa(priority.Default), "")
	fs.StringVar(&c.projectID, "project-id", "", "")
}

func (c *AddCmd) Parse(args []string) error {
	content := strings.Join(args, " ")
	if strings.TrimSpace(content) == "" {
		return invalidArgs("task content required")
	}

	p, err := priority.Parse(c.prio)
	if err != nil {
		return err
	}

	c.task = service.NewTask{
		Content:   content,
		DueString: strings.TrimSpace(c.due),
		Priority:  p,
		ProjectID: strings.TrimSpace(c.projectID),
	}
	return nil
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	task, err := svc.CreateTask(ctx, c.task)
	if err != nil {
		return ReportError(errOut, err)
	}

	if cfg.JSON {
		return writeJSON(out, errOut, task)
	}
	if !cfg.Quiet {
		output.TaskCreated(out, task)
	}
	return exitcode.Success
}
