package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/brainbox-app/brainbox/internal/model"
)

// ListTasks returns the account's tasks. A 404 means the account has no task
// list yet and is treated as empty rather than an error.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		if IsNotFound(err) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, task model.Task) error {
	return c.do(ctx, http.MethodPost, "/tasks", task, nil)
}

func (c *Client) UpdateTask(ctx context.Context, id string, task model.Task) error {
	return c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), task, nil)
}

type statusUpdateRequest struct {
	Status model.TaskStatus `json:"status"`
}

// UpdateTaskStatus sends a partial update carrying only the status field, the
// shape the toggle shortcut uses.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error {
	return c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), statusUpdateRequest{Status: status}, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
