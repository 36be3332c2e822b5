package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"todo/internal/service"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	f := newTestFile(t)

	tasks, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestSave_Format(t *testing.T) {
	f := newTestFile(t)
	tasks := []service.Task{{Text: "Buy milk"}, {Text: "Café <au> lait & 日本語"}}

	require.NoError(t, f.Save(context.Background(), tasks))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	expected := "[\n" +
		"  {\n    \"task\": \"Buy milk\"\n  },\n" +
		"  {\n    \"task\": \"Café <au> lait & 日本語\"\n  }\n" +
		"]\n"
	assert.Equal(t, expected, string(data))
}

func TestSave_EmptyList(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Save(context.Background(), nil))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	tasks, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSave_ReplacesContentsAndLeavesNoTempFiles(t *testing.T) {
	f := newTestFile(t)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []service.Task{{Text: "a"}, {Text: "b"}, {Text: "c"}}))
	require.NoError(t, f.Save(ctx, []service.Task{{Text: "z"}}))

	tasks, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Text: "z"}}, tasks)

	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

func TestSave_InvalidUTF8IsReplaced(t *testing.T) {
	f := newTestFile(t)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []service.Task{{Text: "Buy \xffmilk"}}))

	tasks, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Text: "Buy \uFFFDmilk"}}, tasks)
}

func TestSave_NewFileMode(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Save(context.Background(), []service.Task{{Text: "x"}}))

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSave_KeepsExistingFileMode(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("[]\n"), 0o600))
	require.NoError(t, os.Chmod(f.Path(), 0o600))

	require.NoError(t, f.Save(context.Background(), []service.Task{{Text: "private"}}))

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_MissingDirectory(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing", "tasks.json"), nil)

	err := f.Save(context.Background(), []service.Task{{Text: "x"}})

	assert.Error(t, err)
}

func TestLoad_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: `[{"task": "Buy milk"`},
		{name: "not json", content: "Buy milk\nWalk dog\n"},
		{name: "object instead of array", content: `{"task": "Buy milk"}`},
		{name: "missing task field", content: `[{"title": "Buy milk"}]`},
		{name: "task not a string", content: `[{"task": 42}]`},
		{name: "item not an object", content: `["Buy milk"]`},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFile(t)
			require.NoError(t, os.WriteFile(f.Path(), []byte(tt.content), 0o644))

			tasks, err := f.Load(context.Background())

			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.Nil(t, tasks)
		})
	}
}

func TestLoad_SkipsBlankEntries(t *testing.T) {
	f := newTestFile(t)
	content := `[{"task": "Buy milk"}, {"task": "  "}, {"task": ""}, {"task": "Walk dog"}]`
	require.NoError(t, os.WriteFile(f.Path(), []byte(content), 0o644))

	tasks, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Text: "Buy milk"}, {Text: "Walk dog"}}, tasks)
}

func TestLoad_OnlyBlankEntries(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte(`[{"task": " \t "}]`), 0o644))

	tasks, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestLoad_IgnoresUnknownFields(t *testing.T) {
	f := newTestFile(t)
	content := `[{"task": "Buy milk", "done": true}, {"task": "Walk dog"}]`
	require.NoError(t, os.WriteFile(f.Path(), []byte(content), 0o644))

	tasks, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Text: "Buy milk"}, {Text: "Walk dog"}}, tasks)
}

func TestLoad_CanceledContext(t *testing.T) {
	f := newTestFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = f.Save(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.Map(rapid.String(), strings.TrimSpace).
			Filter(func(s string) bool { return s != "" })
		texts := rapid.SliceOf(text).Draw(rt, "texts")

		tasks := make([]service.Task, len(texts))
		for i, s := range texts {
			tasks[i] = service.Task{Text: s}
		}

		tmp, err := os.CreateTemp(dir, "roundtrip-*.json")
		if err != nil {
			rt.Fatalf("create temp file: %v", err)
		}
		tmp.Close()
		f := New(tmp.Name(), nil)

		if err := f.Save(context.Background(), tasks); err != nil {
			rt.Fatalf("save: %v", err)
		}
		loaded, err := f.Load(context.Background())
		if err != nil {
			rt.Fatalf("load: %v", err)
		}
		if len(loaded) != len(tasks) {
			rt.Fatalf("loaded %d tasks, saved %d", len(loaded), len(tasks))
		}
		for i := range tasks {
			if loaded[i] != tasks[i] {
				rt.Fatalf("task %d: got %q, want %q", i+1, loaded[i].Text, tasks[i].Text)
			}
		}
	})
}
