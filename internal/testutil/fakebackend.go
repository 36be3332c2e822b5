// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"todo/internal/service"
)

// ErrCorrupt simulates a store whose contents cannot be decoded.
var ErrCorrupt = errors.New("corrupt task store")

// FakeBackend is an in-memory implementation of service.Backend for testing.
type FakeBackend struct {
	mu    sync.RWMutex
	tasks []service.Task
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeBackend creates a FakeBackend holding the given task texts.
func NewFakeBackend(texts ...string) *FakeBackend {
	f := &FakeBackend{}
	for _, text := range texts {
		f.tasks = append(f.tasks, service.Task{Text: text})
	}
	return f
}

// Load implements service.Backend.
func (f *FakeBackend) Load(ctx context.Context) ([]service.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// Save implements service.Backend.
func (f *FakeBackend) Save(ctx context.Context, tasks []service.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = make([]service.Task, len(tasks))
	copy(f.tasks, tasks)
	f.saves++
	return nil
}

// Texts returns the persisted task texts in order.
func (f *FakeBackend) Texts() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	texts := make([]string, len(f.tasks))
	for i, t := range f.tasks {
		texts[i] = t.Text
	}
	return texts
}

// Saves returns how many times Save succeeded.
func (f *FakeBackend) Saves() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.saves
}
