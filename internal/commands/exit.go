package commands

import (
	"context"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit menu entry.
type ExitCmd struct{}

func (c *ExitCmd) Key() string      { return "5" }
func (c *ExitCmd) Name() string     { return "exit" }
func (c *ExitCmd) Synopsis() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, env *Env) error {
	env.Out.Println("Bye!")
	return ErrQuit
}
