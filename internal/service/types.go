package service

// Task represents a single task item.
// Identity is positional: a task's number is its 1-based index in the
// list at display time.
type Task struct {
	Text string `json:"task"`
}
