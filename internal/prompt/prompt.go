// Package prompt reads answers to interactive questions one line at a time.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInput wraps failures to read from the input other than its end.
var ErrInput = errors.New("read input")

type line struct {
	text string
	err  error
}

// Prompter writes a question and waits for one line of input.
// Input is read by a single background goroutine, so a pending question
// can be abandoned when the context is canceled.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
	err   error // sticky error once input is exhausted
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) start() {
	p.lines = make(chan line)
	go func() {
		defer close(p.lines)
		reader := bufio.NewReader(p.in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				text = strings.TrimSuffix(text, "\n")
				p.lines <- line{text: strings.TrimSuffix(text, "\r")}
			}
			if errors.Is(err, io.EOF) {
				p.lines <- line{err: io.EOF}
				return
			}
			if err != nil {
				p.lines <- line{err: fmt.Errorf("%w: %w", ErrInput, err)}
				return
			}
		}
	}()
}

// Ask prints label and returns the next input line without its line
// ending. Lines have no length limit. It returns io.EOF when input is
// exhausted, an ErrInput error when reading fails, and ctx.Err() when ctx
// is canceled first.
func (p *Prompter) Ask(ctx context.Context, label string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.once.Do(p.start)

	fmt.Fprint(p.out, label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			p.err = io.EOF
			return "", p.err
		}
		if l.err != nil {
			p.err = l.err
			return "", p.err
		}
		return l.text, nil
	}
}

// Confirm asks a yes/no question. Only "y" (any case, surrounding
// whitespace ignored) counts as yes.
func (p *Prompter) Confirm(ctx context.Context, label string) (bool, error) {
	answer, err := p.Ask(ctx, label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
