package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusRejected  TaskStatus = "REJECTED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusRejected:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	default:
		return false
	}
}

// Task is a to-do entry with priority, status and scheduling fields. Dates and
// times stay as the server-supplied strings; the client never reinterprets them.
type Task struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	StartDate   string       `json:"startDate"`
	DueDate     string       `json:"dueDate"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
	CreatedAt   string       `json:"createdAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}

// ToggleTarget reports the status a toggle moves to. Rejected tasks are not
// toggleable and yield ok=false.
func ToggleTarget(current TaskStatus) (TaskStatus, bool) {
	switch current {
	case TaskStatusCompleted:
		return TaskStatusPending, true
	case TaskStatusPending:
		return TaskStatusCompleted, true
	default:
		return "", false
	}
}

// FilterTasks returns the tasks with the given status. An empty status returns
// the input unchanged, order preserved.
func FilterTasks(items []Task, status TaskStatus) []Task {
	if status == "" {
		return items
	}
	out := make([]Task, 0, len(items))
	for _, task := range items {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out
}
