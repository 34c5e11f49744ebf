// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All Todoist API calls go through this interface.
// Commands never build HTTP requests directly.
type Service interface {
	// ListTasks returns active tasks in API order (no client-side sorting).
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)

	// ListProjects returns all projects in API order.
	ListProjects(ctx context.Context) ([]Project, error)

	// ResolveProject finds a project by name (case-insensitive, trimmed).
	// Duplicate names resolve to the first project in server order.
	// Returns ErrNotFound when nothing matches.
	ResolveProject(ctx context.Context, name string) (Project, error)

	// GetTask returns a single task.
	GetTask(ctx context.Context, taskID string) (Task, error)

	// CreateTask creates a task and returns it with the server-assigned ID.
	CreateTask(ctx context.Context, task NewTask) (Task, error)

	// UpdateTask applies a partial update and returns the updated task.
	UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (Task, error)

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, taskID string) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, taskID string) error
}
