package todoapi

import (
	"context"
	"net/http"
	"time"

	"taskmgr/internal/service"
)

// DateLayout is the due date format sent to the API.
const DateLayout = "2006-01-02"

// taskDTO is the wire form of a task.
type taskDTO struct {
	ID          string `json:"_id,omitempty"`
	AltID       string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

type listResponse struct {
	Tasks []taskDTO `json:"tasks"`
}

type createResponse struct {
	Task taskDTO `json:"task"`
}

// ListTasks returns all tasks of the logged-in user.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, []string{"api", "todo"}, nil, &resp); err != nil {
		return nil, err
	}

	result := make([]service.Task, 0, len(resp.Tasks))
	for _, dto := range resp.Tasks {
		result = append(result, c.toTask(dto))
	}
	return result, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, in service.TaskInput) (service.Task, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, []string{"api", "todo"}, fromInput(in), &resp); err != nil {
		return service.Task{}, err
	}
	return c.toTask(resp.Task), nil
}

// UpdateTask replaces the fields of a task.
func (c *Client) UpdateTask(ctx context.Context, id string, in service.TaskInput) error {
	return c.do(ctx, http.MethodPut, []string{"api", "todo", id}, fromInput(in), nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, []string{"api", "todo", id}, nil, nil)
}

func fromInput(in service.TaskInput) taskDTO {
	dto := taskDTO{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	}
	if !in.DueDate.IsZero() {
		dto.DueDate = in.DueDate.Format(DateLayout)
	}
	return dto
}

func (c *Client) toTask(dto taskDTO) service.Task {
	id := dto.ID
	if id == "" {
		id = dto.AltID
	}
	task := service.Task{
		ID:          id,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      dto.Status,
	}
	if dto.DueDate != "" {
		due, err := ParseDate(dto.DueDate)
		if err != nil {
			c.log.Debug().Str("task", id).Str("due_date", dto.DueDate).Msg("ignoring unparseable due date")
		} else {
			task.DueDate = due
		}
	}
	return task
}

// ParseDate accepts a plain date or an RFC 3339 timestamp.
// Timestamps keep only their UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
