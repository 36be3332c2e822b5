package prompt

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_ReadsLinesInOrder(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("first\r\n  second  \nlast"), &out)
	ctx := context.Background()

	got, err := p.Ask(ctx, "a: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Ask(ctx, "b: ")
	require.NoError(t, err)
	assert.Equal(t, "  second  ", got, "answers are not trimmed")

	got, err = p.Ask(ctx, "c: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "final line without newline is returned")

	assert.Equal(t, "a: b: c: ", out.String())
}

func TestAsk_EOF(t *testing.T) {
	p := New(strings.NewReader("only\n"), io.Discard)
	ctx := context.Background()

	_, err := p.Ask(ctx, "")
	require.NoError(t, err)

	_, err = p.Ask(ctx, "")
	assert.ErrorIs(t, err, io.EOF)

	_, err = p.Ask(ctx, "")
	assert.ErrorIs(t, err, io.EOF, "EOF is sticky")
}

func TestAsk_NoLineLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 3<<20)
	p := New(strings.NewReader(long+"\nnext\n"), io.Discard)
	ctx := context.Background()

	got, err := p.Ask(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = p.Ask(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestAsk_BlankLines(t *testing.T) {
	p := New(strings.NewReader("\n\r\n"), io.Discard)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := p.Ask(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
	_, err := p.Ask(ctx, "")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAsk_ReadError(t *testing.T) {
	broken := errors.New("input/output error")
	p := New(io.MultiReader(strings.NewReader("ok\npartial"), iotest.ErrReader(broken)), io.Discard)
	ctx := context.Background()

	got, err := p.Ask(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	got, err = p.Ask(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "partial", got, "data before the failure is still returned")

	_, err = p.Ask(ctx, "")
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, io.EOF)

	_, err = p.Ask(ctx, "")
	assert.ErrorIs(t, err, ErrInput, "read errors are sticky")
}

func TestAsk_ContextCanceled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := New(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Ask(ctx, "waiting: ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{"  y  ", true},
		{"yes", false},
		{"n", false},
		{"", false},
		{"N", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(strings.NewReader(tt.input+"\n"), io.Discard)

			got, err := p.Confirm(context.Background(), "sure? ")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
