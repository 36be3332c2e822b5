package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// TaskStore owns the in-memory task list and mirrors it to a Backend.
// Every successful mutation rewrites the whole list.
type TaskStore struct {
	backend Backend
	tasks   []Task
	log     logrus.FieldLogger
}

// Open loads the task list from backend.
// It never fails: a missing, unreadable or corrupt store yields an empty
// list, and the cause is only logged at debug level.
func Open(ctx context.Context, backend Backend, log logrus.FieldLogger) *TaskStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "store")

	s := &TaskStore{backend: backend, log: log, tasks: []Task{}}

	tasks, err := backend.Load(ctx)
	if err != nil {
		log.WithError(err).Debug("task store unreadable, starting with no tasks")
		return s
	}
	if tasks != nil {
		s.tasks = tasks
	}
	log.WithField("count", len(s.tasks)).Debug("tasks loaded")
	return s
}

// Tasks returns a copy of the current list in display order.
func (s *TaskStore) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Save writes the full list to the backend.
func (s *TaskStore) Save(ctx context.Context) error {
	return s.commit(ctx, s.tasks)
}

// Add appends a task with the trimmed text and persists the list.
func (s *TaskStore) Add(ctx context.Context, text string) (Task, error) {
	text = cleanText(text)
	if text == "" {
		return Task{}, ErrEmptyTask
	}

	task := Task{Text: text}
	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)

	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Edit replaces the text of the task at the 1-based index.
// It returns the task as it was before and after the change.
func (s *TaskStore) Edit(ctx context.Context, index int, text string) (old, updated Task, err error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, Task{}, err
	}
	text = cleanText(text)
	if text == "" {
		return Task{}, Task{}, ErrEmptyTask
	}

	old = s.tasks[index-1]
	updated = Task{Text: text}

	next := s.Tasks()
	next[index-1] = updated

	if err := s.commit(ctx, next); err != nil {
		return Task{}, Task{}, err
	}
	return old, updated, nil
}

// Delete removes the task at the 1-based index; later tasks move up one
// position. It returns the removed task.
func (s *TaskStore) Delete(ctx context.Context, index int) (Task, error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, err
	}

	removed := s.tasks[index-1]
	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:index-1]...)
	next = append(next, s.tasks[index:]...)

	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	return removed, nil
}

// cleanText trims text and replaces invalid UTF-8 sequences with U+FFFD,
// so the stored text is exactly what the task file holds.
func cleanText(text string) string {
	return strings.ToValidUTF8(strings.TrimSpace(text), "\uFFFD")
}

func (s *TaskStore) checkIndex(index int) error {
	if index < 1 || index > len(s.tasks) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return nil
}

// commit persists next and only then makes it the current list.
func (s *TaskStore) commit(ctx context.Context, next []Task) error {
	if err := s.backend.Save(ctx, next); err != nil {
		s.log.WithError(err).Debug("save failed, keeping previous list")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.tasks = next
	s.log.WithField("count", len(next)).Debug("tasks saved")
	return nil
}
