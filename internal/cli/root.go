// Package cli wires configuration, storage and the menu loop into the todo
// command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/backend/jsonfile"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// NewRootCmd creates the todo command. dir is where todo.toml and a
// relative task file are looked up; the session's exit code is stored in
// code.
func NewRootCmd(dir string, code *int) *cobra.Command {
	return &cobra.Command{
		Use:           "todo",
		Short:         "Keep a simple to-do list from an interactive menu",
		Long:          "todo keeps a list of short text tasks in a local JSON file and lets you add, view, edit and delete them from a numbered menu.",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = runSession(cmd.Context(), dir, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
}

// Execute runs the todo command with args and returns the exit code.
func Execute(ctx context.Context, dir string, args []string, in io.Reader, out, errOut io.Writer) int {
	code := exitcode.Success
	root := NewRootCmd(dir, &code)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return code
}

func runSession(ctx context.Context, dir string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	logger, closer, err := logging.New(cfg, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	defer closer.Close()

	backend := jsonfile.New(cfg.DataPath(), logger)
	store := service.Open(ctx, backend, logger)

	dispatcher := NewDispatcher(commands.DefaultRegistry, store, in, out, errOut, logger)
	return dispatcher.Run(ctx, cfg.DataFile)
}
