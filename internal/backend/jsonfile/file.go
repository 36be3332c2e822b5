// Package jsonfile implements service.Backend on top of a local JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"todo/internal/service"
)

// defaultMode is the permission of a newly created task file.
const defaultMode os.FileMode = 0o644

// ErrInvalidFormat is returned by Load when the file is not a task list.
var ErrInvalidFormat = errors.New("invalid task file")

// File stores the task list as an indented JSON array of {"task": ...}
// objects. Non-ASCII text is written literally.
type File struct {
	path string
	log  logrus.FieldLogger
}

// New creates a File backend for path. The file is not touched until
// Load or Save is called.
func New(path string, log logrus.FieldLogger) *File {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &File{
		path: path,
		log:  log.WithFields(logrus.Fields{"component": "jsonfile", "path": path}),
	}
}

// Path returns the location of the task file.
func (f *File) Path() string {
	return f.path
}

// Load implements service.Backend.
// A missing file is an empty list. Anything that does not decode to a
// schema-valid task list is reported as an error. Blank entries are
// skipped; the other tasks keep their order.
func (f *File) Load(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.log.Debug("task file does not exist yet")
		return []service.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return dropBlank(tasks, f.log), nil
}

// dropBlank removes entries whose text is empty after trimming.
func dropBlank(tasks []service.Task, log logrus.FieldLogger) []service.Task {
	kept := make([]service.Task, 0, len(tasks))
	for i, t := range tasks {
		if strings.TrimSpace(t.Text) == "" {
			log.WithField("entry", i+1).Debug("skipping blank task")
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// Save implements service.Backend.
// The list is written to a temp file next to the target and renamed over
// it, so the file on disk is always either the old or the new list.
func (f *File) Save(ctx context.Context, tasks []service.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tempFile, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("sync task file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	if err := os.Chmod(tempPath, f.fileMode()); err != nil {
		return fmt.Errorf("chmod task file: %w", err)
	}
	if err := os.Rename(tempPath, f.path); err != nil {
		return fmt.Errorf("rename task file: %w", err)
	}

	success = true
	f.log.WithField("count", len(tasks)).Debug("task file written")
	return nil
}

// fileMode returns the permissions of the existing task file, or 0644
// for a new one.
func (f *File) fileMode() os.FileMode {
	info, err := os.Stat(f.path)
	if err != nil {
		return defaultMode
	}
	return info.Mode().Perm()
}

// Encode renders tasks in the task file format: two-space indentation,
// literal non-ASCII and HTML characters, trailing newline. A nil or empty
// list encodes as [].
func Encode(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return buf.Bytes(), nil
}
