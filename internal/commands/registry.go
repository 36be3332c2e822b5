package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands keyed by menu choice.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key is empty or already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key()
	if key == "" {
		return fmt.Errorf("command has no menu key: %s", c.Name())
	}
	if existing, exists := r.cmds[key]; exists {
		return fmt.Errorf("menu key %s already registered by %s", key, existing.Name())
	}
	r.cmds[key] = c
	return nil
}

// Find looks up a command by menu choice.
func (r *Registry) Find(key string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// All returns all commands in menu order.
// Keys sort numerically when they are numbers of different lengths.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Key(), result[j].Key()
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
