package commands

import (
	"context"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view menu entry. It never changes the list.
type ViewCmd struct{}

func (c *ViewCmd) Key() string      { return "2" }
func (c *ViewCmd) Name() string     { return "view" }
func (c *ViewCmd) Synopsis() string { return "View tasks" }

func (c *ViewCmd) Run(ctx context.Context, env *Env) error {
	env.Out.TaskList(env.Store.Tasks())
	return nil
}
