// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"todoist/internal/priority"
	"todoist/internal/service"
)

const (
	// NoTasksMessage is printed when a task listing is empty.
	NoTasksMessage = "No active tasks found."

	// NoProjectsMessage is printed when a project listing is empty.
	NoProjectsMessage = "No projects found."

	// NoDueDate is shown in the task table for tasks without a due date.
	NoDueDate = "No Date"

	taskRule    = 80
	projectRule = 45
	detailRule  = 40
)

// FormatTaskRow formats one row of the task table.
// Format: "{ID:<20} | {PRIORITY:<12} | {DUE:<15} | {CONTENT}\n"
func FormatTaskRow(w io.Writer, id, prio, due, content string) {
	fmt.Fprintf(w, "%-20s | %-12s | %-15s | %s\n", id, prio, due, content)
}

// TaskTable prints a header, a rule and one row per task.
// Callers handle the empty case.
func TaskTable(w io.Writer, tasks []service.Task) {
	FormatTaskRow(w, "ID", "Priority", "Due", "Content")
	fmt.Fprintln(w, strings.Repeat("-", taskRule))
	for _, t := range tasks {
		FormatTaskRow(w, t.ID, priority.Label(t.Priority), dueString(t, NoDueDate), normalizeContent(t.Content))
	}
}

// ProjectList prints a header, a rule and one row per project.
// Child projects are indented by two spaces.
func ProjectList(w io.Writer, projects []service.Project) {
	fmt.Fprintf(w, "%-20s | %s\n", "ID", "Name")
	fmt.Fprintln(w, strings.Repeat("-", projectRule))
	for _, p := range projects {
		indent := ""
		if p.ParentID != "" {
			indent = "  "
		}
		fmt.Fprintf(w, "%-20s | %s%s\n", p.ID, indent, normalizeContent(p.Name))
	}
}

// TaskCreated prints the confirmation for a newly created task.
func TaskCreated(w io.Writer, t service.Task) {
	fmt.Fprintln(w, "Task created successfully!")
	fmt.Fprintf(w, "  ID: %s\n", t.ID)
	fmt.Fprintf(w, "  Content: %s\n", normalizeContent(t.Content))
	if t.Due != nil && t.Due.String != "" {
		fmt.Fprintf(w, "  Due: %s\n", t.Due.String)
	}
	fmt.Fprintf(w, "  Priority: %s\n", priority.Label(t.Priority))
}

// TaskDetail prints every known field of a task.
func TaskDetail(w io.Writer, t service.Task) {
	fmt.Fprintln(w, "Task Details")
	fmt.Fprintln(w, strings.Repeat("-", detailRule))
	detailLine(w, "ID", t.ID)
	detailLine(w, "Content", normalizeContent(t.Content))
	detailLine(w, "Priority", priority.Label(t.Priority))
	detailLine(w, "Due", dueString(t, "No date"))
	if t.CreatedAt != "" {
		detailLine(w, "Created", t.CreatedAt)
	}
	if t.Description != "" {
		detailLine(w, "Description", normalizeContent(t.Description))
	}
	if len(t.Labels) > 0 {
		detailLine(w, "Labels", strings.Join(t.Labels, ", "))
	}
	if t.Completed {
		detailLine(w, "Status", "completed")
	}
}

// Completed prints the confirmation for a completed task.
func Completed(w io.Writer, taskID string) {
	fmt.Fprintf(w, "Task %s marked as completed.\n", taskID)
}

// Deleted prints the confirmation for a deleted task.
func Deleted(w io.Writer, taskID string) {
	fmt.Fprintf(w, "Task %s deleted.\n", taskID)
}

// Updated prints the confirmation for an updated task.
func Updated(w io.Writer, taskID string) {
	fmt.Fprintf(w, "Task %s updated successfully.\n", taskID)
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func detailLine(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

func dueString(t service.Task, fallback string) string {
	if t.Due == nil || t.Due.String == "" {
		return fallback
	}
	return t.Due.String
}

// normalizeContent flattens newlines so each task stays on one line.
// Empty or whitespace-only content becomes "(untitled)".
func normalizeContent(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
