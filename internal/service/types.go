// Package service defines the backend-agnostic interface for task operations.
package service

import "time"

// Task statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a single to-do item as last seen on the server.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time // zero if the server sent none
	Status      string    // "pending" or "completed"
}

// Completed reports whether the task is marked completed.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Input returns the task's current values as an update payload.
func (t Task) Input() TaskInput {
	return TaskInput{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
	}
}

// TaskInput is the payload for creating or updating a task.
// An empty Status is omitted and left to the server.
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Status      string
}

// ToggleStatus returns the opposite of status: pending becomes completed and
// anything else becomes pending.
func ToggleStatus(status string) string {
	if status == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}
