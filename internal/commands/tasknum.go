package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber indicates the answer to a task number prompt was not an
// integer.
var ErrNotANumber = errors.New("not a number")

// ParseTaskNumber parses a task number typed by the user.
// Surrounding whitespace and a leading sign are accepted; range checking
// is left to the store so that 0 and negatives report an invalid task
// number rather than a parse error.
func ParseTaskNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

// askTaskNumber shows the listing and asks which task to act on.
// ok is false when the answer was not a number; the user has already been
// told and the command should return to the menu.
func askTaskNumber(ctx context.Context, env *Env, label string) (num int, ok bool, err error) {
	env.Out.TaskList(env.Store.Tasks())

	answer, err := env.Prompt.Ask(ctx, label)
	if err != nil {
		return 0, false, err
	}
	num, err = ParseTaskNumber(answer)
	if err != nil {
		env.Out.Println("Please enter a valid number.")
		return 0, false, nil
	}
	return num, true, nil
}
