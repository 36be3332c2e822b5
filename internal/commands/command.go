// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"todo/internal/output"
	"todo/internal/prompt"
	"todo/internal/service"
)

// ErrQuit is returned by a command that ends the session.
var ErrQuit = errors.New("quit")

// Env is what a command operates on during one session.
type Env struct {
	Store  *service.TaskStore
	Prompt *prompt.Prompter
	Out    *output.Printer
	Log    logrus.FieldLogger
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu choice that selects the command.
	Key() string

	// Name returns a short identifier used in logs.
	Name() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// Validation problems are reported to the user and yield nil.
	// A non-nil error ends the session: ErrQuit, io.EOF, prompt.ErrInput,
	// a context error, or a failure to persist tasks.
	Run(ctx context.Context, env *Env) error
}
