package commands

import (
	"context"
	"errors"

	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add menu entry.
type AddCmd struct{}

func (c *AddCmd) Key() string      { return "1" }
func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) error {
	text, err := env.Prompt.Ask(ctx, "Enter task description: ")
	if err != nil {
		return err
	}

	task, err := env.Store.Add(ctx, text)
	if errors.Is(err, service.ErrEmptyTask) {
		env.Out.Println("Cannot add an empty task.")
		return nil
	}
	if err != nil {
		return err
	}

	env.Log.WithField("count", env.Store.Len()).Info("task added")
	env.Out.Printf("Task '%s' added successfully.", task.Text)
	return nil
}
