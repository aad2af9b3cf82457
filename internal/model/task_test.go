package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		Title:     "Write weekly review",
		Priority:  TaskPriorityHigh,
		Status:    TaskStatusPending,
		StartDate: "2026-09-01",
		DueDate:   "2026-09-03",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateEmptyTitle(t *testing.T) {
	task := Task{
		Title:    "   ",
		Priority: TaskPriorityLow,
		Status:   TaskStatusPending,
	}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title, got nil")
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	task := Task{
		Title:    "Bad enums",
		Priority: TaskPriority("URGENT"),
		Status:   TaskStatusPending,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	task.Priority = TaskPriorityMedium
	task.Status = TaskStatus("DONE")
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestToggleTargetRoundTrip(t *testing.T) {
	next, ok := ToggleTarget(TaskStatusPending)
	if !ok || next != TaskStatusCompleted {
		t.Fatalf("expected PENDING -> COMPLETED, got %q ok=%v", next, ok)
	}
	back, ok := ToggleTarget(next)
	if !ok || back != TaskStatusPending {
		t.Fatalf("expected COMPLETED -> PENDING, got %q ok=%v", back, ok)
	}
}

func TestToggleTargetRejectedNotToggleable(t *testing.T) {
	if _, ok := ToggleTarget(TaskStatusRejected); ok {
		t.Fatal("expected rejected task to not be toggleable")
	}
}

func TestFilterTasksPartition(t *testing.T) {
	tasks := []Task{
		{ID: "t1", Status: TaskStatusPending},
		{ID: "t2", Status: TaskStatusCompleted},
		{ID: "t3", Status: TaskStatusPending},
		{ID: "t4", Status: TaskStatusRejected},
	}

	pending := FilterTasks(tasks, TaskStatusPending)
	if len(pending) != 2 || pending[0].ID != "t1" || pending[1].ID != "t3" {
		t.Fatalf("unexpected pending partition: %#v", pending)
	}

	all := FilterTasks(tasks, "")
	if len(all) != len(tasks) {
		t.Fatalf("expected all tasks for empty status, got %d", len(all))
	}
	for i := range all {
		if all[i].ID != tasks[i].ID {
			t.Fatalf("expected order preserved at %d, got %q", i, all[i].ID)
		}
	}
}
