// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single Todoist task.
type Task struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
	Priority    int      `json:"priority"`
	Due         *Due     `json:"due,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// Due is a task's due date as interpreted by the remote service.
type Due struct {
	String    string `json:"string"`
	Date      string `json:"date,omitempty"`
	Recurring bool   `json:"recurring,omitempty"`
}

// Project represents a Todoist project.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// TaskFilter narrows a task listing. The zero value lists all active tasks.
type TaskFilter struct {
	ProjectID string
}

// NewTask holds the fields for creating a task.
// DueString and ProjectID are omitted from the request when empty.
type NewTask struct {
	Content   string
	DueString string
	Priority  int
	ProjectID string
}

// TaskUpdate holds a partial update. Nil fields and a zero Priority are left
// unchanged on the server.
type TaskUpdate struct {
	Content     *string
	DueString   *string
	Description *string
	Priority    int
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Content == nil && u.DueString == nil && u.Description == nil && u.Priority == 0
}
