package commands

import (
	"context"
	"errors"

	"todo/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit menu entry.
type EditCmd struct{}

func (c *EditCmd) Key() string      { return "3" }
func (c *EditCmd) Name() string     { return "edit" }
func (c *EditCmd) Synopsis() string { return "Edit task" }

func (c *EditCmd) Run(ctx context.Context, env *Env) error {
	if env.Store.Len() == 0 {
		env.Out.Println("No tasks to edit.")
		return nil
	}

	num, ok, err := askTaskNumber(ctx, env, "Enter task number to edit: ")
	if err != nil || !ok {
		return err
	}

	// The new text is asked for before the number is range checked.
	text, err := env.Prompt.Ask(ctx, "Enter new task description: ")
	if err != nil {
		return err
	}

	old, updated, err := env.Store.Edit(ctx, num, text)
	switch {
	case errors.Is(err, service.ErrInvalidIndex):
		env.Out.Println("Invalid task number.")
		return nil
	case errors.Is(err, service.ErrEmptyTask):
		env.Out.Println("Task text cannot be empty.")
		return nil
	case err != nil:
		return err
	}

	env.Log.WithField("number", num).Info("task edited")
	env.Out.Printf("Task '%s' updated to '%s'.", old.Text, updated.Text)
	return nil
}
