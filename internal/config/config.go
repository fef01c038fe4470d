// Package config loads optional YAML defaults for the rnashapes commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"rnashapes/internal/logging"
)

// DefaultPath is read when --config is not given and the file exists.
const DefaultPath = "rnashapes.yaml"

// Config mirrors rnashapes.yaml.
type Config struct {
	Log     Log    `yaml:"log"`
	Output  string `yaml:"output"`
	Threads int    `yaml:"threads"`
	Bench   Bench  `yaml:"bench"`

	// Source is the file the values came from ("" for built-in defaults).
	Source string `yaml:"-"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Bench struct {
	MaxReport      int  `yaml:"max_report"`
	FailOnMismatch bool `yaml:"fail_on_mismatch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: logging.FormatConsole},
		Output: "text",
		Bench:  Bench{MaxReport: 20},
	}
}

// Load reads path over the defaults. An empty path falls back to DefaultPath
// when it exists; a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Source = path
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the commands cannot honor.
func Validate(c Config) error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	switch c.Output {
	case "", "text", "tsv", "json", "jsonl", "yaml":
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.Threads < 0 {
		return errors.New("threads must be ≥ 0")
	}
	if c.Bench.MaxReport < 0 {
		return errors.New("bench.max_report must be ≥ 0")
	}
	return nil
}
