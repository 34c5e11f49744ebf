// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"todoist/internal/priority"
	"todoist/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu       sync.RWMutex
	projects []service.Project
	tasks    []service.Task
	nextID   int

	// Calls counts every service method invocation.
	Calls int

	// LastFilter is the filter passed to the most recent ListTasks call.
	LastFilter service.TaskFilter

	// LastCreate is the most recent CreateTask argument.
	LastCreate *service.NewTask

	// LastUpdate is the most recent UpdateTask argument.
	LastUpdate *service.TaskUpdate

	// Error injection for testing
	ListTasksErr      error
	ListProjectsErr   error
	ResolveProjectErr error
	GetTaskErr        error
	CreateTaskErr     error
	UpdateTaskErr     error
	CompleteTaskErr   error
	DeleteTaskErr     error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1000}
}

// AddProject adds a project. parentID may be empty.
func (f *FakeService) AddProject(id, name, parentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, service.Project{ID: id, Name: name, ParentID: parentID})
}

// AddTask adds an active task.
func (f *FakeService) AddTask(task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task.Priority == 0 {
		task.Priority = priority.Default
	}
	f.tasks = append(f.tasks, task)
}

// Task returns the stored task with the given ID.
func (f *FakeService) Task(id string) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

func (f *FakeService) called() {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	f.called()
	f.mu.Lock()
	f.LastFilter = filter
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, t := range f.tasks {
		if t.Completed {
			continue
		}
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// ListProjects implements service.Service.
func (f *FakeService) ListProjects(ctx context.Context) ([]service.Project, error) {
	f.called()
	if f.ListProjectsErr != nil {
		return nil, f.ListProjectsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Project, len(f.projects))
	copy(result, f.projects)
	return result, nil
}

// ResolveProject implements service.Service.
func (f *FakeService) ResolveProject(ctx context.Context, name string) (service.Project, error) {
	f.called()
	if f.ResolveProjectErr != nil {
		return service.Project{}, f.ResolveProjectErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	name = strings.TrimSpace(name)

	for _, p := range f.projects {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p, nil
		}
	}
	return service.Project{}, fmt.Errorf("project %w: %s", service.ErrNotFound, name)
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	f.called()
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	t, ok := f.Task(taskID)
	if !ok {
		return service.Task{}, notFound(taskID)
	}
	return t, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.NewTask) (service.Task, error) {
	f.called()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreate = &task
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	p := task.Priority
	if p == 0 {
		p = priority.Default
	}
	created := service.Task{
		ID:        fmt.Sprint(f.nextID),
		Content:   task.Content,
		ProjectID: task.ProjectID,
		Priority:  p,
	}
	if task.DueString != "" {
		created.Due = &service.Due{String: task.DueString}
	}
	f.nextID++
	f.tasks = append(f.tasks, created)
	return created, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, taskID string, update service.TaskUpdate) (service.Task, error) {
	f.called()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastUpdate = &update
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}

	for i, t := range f.tasks {
		if t.ID != taskID {
			continue
		}
		if update.Content != nil {
			t.Content = *update.Content
		}
		if update.Description != nil {
			t.Description = *update.Description
		}
		if update.DueString != nil {
			t.Due = &service.Due{String: *update.DueString}
		}
		if update.Priority != 0 {
			t.Priority = update.Priority
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, notFound(taskID)
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, taskID string) error {
	f.called()
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == taskID {
			f.tasks[i].Completed = true
			return nil
		}
	}
	return notFound(taskID)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) error {
	f.called()
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return notFound(taskID)
}

func notFound(taskID string) error {
	return fmt.Errorf("%w (HTTP 404): task %s", service.ErrNotFound, taskID)
}
