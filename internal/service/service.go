// Package service defines the task model and the mutation API over it.
package service

import (
	"context"
	"errors"
)

// Backend defines where a task list is persisted.
// The task file is the only production implementation; commands never
// talk to a Backend directly, they go through TaskStore.
type Backend interface {
	// Load returns the persisted tasks in order.
	// A backend with no stored data returns an empty slice and no error.
	Load(ctx context.Context) ([]Task, error)

	// Save replaces the persisted tasks with the given ordered list.
	Save(ctx context.Context, tasks []Task) error
}

var (
	// ErrEmptyTask is returned when task text is empty after trimming.
	ErrEmptyTask = errors.New("task text cannot be empty")

	// ErrInvalidIndex is returned when a task number is outside 1..len.
	ErrInvalidIndex = errors.New("invalid task number")

	// ErrPersist wraps failures to write the task list to its backend.
	ErrPersist = errors.New("save tasks")
)
