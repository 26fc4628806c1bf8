// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All Task Manager API calls for the dashboard go through this interface.
// The server is the source of truth; callers re-fetch after mutations
// when they need the authoritative list.
type Service interface {
	// ListTasks returns all of the user's tasks in API order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns it as stored by the server.
	CreateTask(ctx context.Context, in TaskInput) (Task, error)

	// UpdateTask replaces the fields of the task with the given ID.
	UpdateTask(ctx context.Context, id string, in TaskInput) error

	// DeleteTask deletes the task with the given ID.
	DeleteTask(ctx context.Context, id string) error
}
