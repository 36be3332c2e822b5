package commands

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the delete menu entry.
type RmCmd struct{}

func (c *RmCmd) Key() string      { return "4" }
func (c *RmCmd) Name() string     { return "delete" }
func (c *RmCmd) Synopsis() string { return "Delete task" }

func (c *RmCmd) Run(ctx context.Context, env *Env) error {
	if env.Store.Len() == 0 {
		env.Out.Println("No tasks to delete.")
		return nil
	}

	num, ok, err := askTaskNumber(ctx, env, "Enter task number to delete: ")
	if err != nil || !ok {
		return err
	}

	confirmed, err := env.Prompt.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete task %d? (y/N): ", num))
	if err != nil {
		return err
	}
	if !confirmed {
		env.Out.Println("Delete cancelled.")
		return nil
	}

	removed, err := env.Store.Delete(ctx, num)
	if errors.Is(err, service.ErrInvalidIndex) {
		env.Out.Println("Invalid task number.")
		return nil
	}
	if err != nil {
		return err
	}

	env.Log.WithField("number", num).Info("task deleted")
	env.Out.Printf("Task '%s' deleted.", removed.Text)
	return nil
}
