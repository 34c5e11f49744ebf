package todoist

import "todoist/internal/service"

// page is the envelope returned by list endpoints.
type page[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
}

type apiTask struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	ProjectID   string   `json:"project_id"`
	Priority    int      `json:"priority"`
	Due         *apiDue  `json:"due"`
	Labels      []string `json:"labels"`
	Checked     bool     `json:"checked"`
	AddedAt     string   `json:"added_at"`
}

type apiDue struct {
	String      string `json:"string"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
}

type apiProject struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type apiErrorBody struct {
	Error    string `json:"error"`
	ErrorTag string `json:"error_tag"`
}

type createTaskRequest struct {
	Content   string `json:"content"`
	Priority  int    `json:"priority"`
	DueString string `json:"due_string,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

type updateTaskRequest struct {
	Content     *string `json:"content,omitempty"`
	Description *string `json:"description,omitempty"`
	DueString   *string `json:"due_string,omitempty"`
	Priority    int     `json:"priority,omitempty"`
}

func (t apiTask) toService() service.Task {
	task := service.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		Priority:    t.Priority,
		Labels:      t.Labels,
		Completed:   t.Checked,
		CreatedAt:   t.AddedAt,
	}
	if t.Due != nil {
		task.Due = &service.Due{
			String:    t.Due.String,
			Date:      t.Due.Date,
			Recurring: t.Due.IsRecurring,
		}
	}
	return task
}

func (p apiProject) toService() service.Project {
	project := service.Project{ID: p.ID, Name: p.Name}
	if p.ParentID != nil {
		project.ParentID = *p.ParentID
	}
	return project
}
