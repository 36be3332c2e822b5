// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the user chose Exit or input ended.
	Success = 0

	// UserError indicates bad arguments, or a todo.toml or log file that
	// could not be used.
	UserError = 1

	// StorageError indicates the task file could not be written.
	StorageError = 3

	// Interrupted indicates the session was stopped by a signal.
	Interrupted = 130
)
