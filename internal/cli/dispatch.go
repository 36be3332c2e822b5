package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"todo/internal/commands"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/prompt"
	"todo/internal/service"
)

// Dispatcher runs the interactive menu loop.
type Dispatcher struct {
	registry *commands.Registry
	env      *commands.Env
	errOut   io.Writer
	log      logrus.FieldLogger
}

// NewDispatcher creates a dispatcher that serves the commands in registry
// against store, reading answers from in.
func NewDispatcher(registry *commands.Registry, store *service.TaskStore, in io.Reader, out, errOut io.Writer, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "menu")
	return &Dispatcher{
		registry: registry,
		env: &commands.Env{
			Store:  store,
			Prompt: prompt.New(in, out),
			Out:    output.NewPrinter(out),
			Log:    log,
		},
		errOut: errOut,
		log:    log,
	}
}

// Run prints the banner, then shows the menu and dispatches choices until
// the user exits, input ends or cannot be read, ctx is canceled or a save
// fails.
// dataFile is the task file named in the banner. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, dataFile string) int {
	cmds := d.registry.All()
	if len(cmds) == 0 {
		fmt.Fprintln(d.errOut, "error: no commands registered")
		return exitcode.UserError
	}

	items := make([]output.MenuItem, len(cmds))
	for i, cmd := range cmds {
		items[i] = output.MenuItem{Key: cmd.Key(), Label: cmd.Synopsis()}
	}
	keyRange := fmt.Sprintf("%s-%s", cmds[0].Key(), cmds[len(cmds)-1].Key())
	choicePrompt := fmt.Sprintf("Enter choice (%s): ", keyRange)

	out := d.env.Out
	out.Banner(dataFile)

	for {
		out.Menu(items)

		choice, err := d.env.Prompt.Ask(ctx, choicePrompt)
		if err != nil {
			return d.finish(err)
		}

		cmd, ok := d.registry.Find(strings.TrimSpace(choice))
		if !ok {
			out.Printf("Invalid choice. Please enter %s.", keyRange)
			continue
		}

		d.log.WithField("command", cmd.Name()).Debug("dispatching")
		if err := cmd.Run(ctx, d.env); err != nil {
			return d.finish(err)
		}
	}
}

// finish maps the error that ended the loop to an exit code.
func (d *Dispatcher) finish(err error) int {
	out := d.env.Out
	switch {
	case errors.Is(err, commands.ErrQuit):
		return exitcode.Success
	case errors.Is(err, io.EOF), errors.Is(err, prompt.ErrInput):
		if !errors.Is(err, io.EOF) {
			d.log.WithError(err).Warn("input unreadable, ending session")
		}
		fmt.Fprintln(out.Writer())
		out.Println("Bye!")
		return exitcode.Success
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(out.Writer())
		d.log.Debug("session interrupted")
		return exitcode.Interrupted
	default:
		d.log.WithError(err).Debug("session aborted")
		fmt.Fprintf(d.errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
}
