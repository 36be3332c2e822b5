// Package config loads the optional todo.toml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	// FileName is the settings file looked up in the working directory.
	FileName = "todo.toml"

	// DefaultDataFile is the task file used when none is configured.
	DefaultDataFile = "tasks.json"

	// DefaultLogLevel keeps operational logs quiet during interactive use.
	DefaultLogLevel = "warn"
)

// Config holds settings for one run.
type Config struct {
	// DataFile is the path of the task file. Relative paths are resolved
	// against the directory the settings were loaded from.
	DataFile string `toml:"data_file"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFile receives operational logs. Empty means stderr.
	LogFile string `toml:"log_file"`

	// Dir is the directory the settings apply to.
	Dir string `toml:"-"`
}

// Default returns the settings used when no todo.toml exists.
func Default(dir string) *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
		Dir:      dir,
	}
}

// Load reads dir/todo.toml over the defaults. A missing file is not an
// error; a malformed one, an unknown key or an invalid log level is.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	path := filepath.Join(dir, FileName)
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("loading %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// DataPath returns the task file path resolved against Dir.
func (c *Config) DataPath() string {
	return c.resolve(c.DataFile)
}

// LogPath returns the log file path resolved against Dir, or "" for stderr.
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	return c.resolve(c.LogFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}
