// Package config holds the settings of an fsaudit run.
//
// Settings come from built-in defaults, optionally replaced by a YAML file,
// and finally by command-line flags the user set explicitly.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dendrascience/fsaudit/digest"
	"github.com/dendrascience/fsaudit/fstree"
	"github.com/dendrascience/fsaudit/report"
)

// ErrInvalidFormat is returned for a config file that cannot be decoded or
// holds a value outside its accepted set.
var ErrInvalidFormat = errors.New("invalid configuration")

// Config is the resolved configuration of one run.
type Config struct {
	// Path is the root to audit. Empty means the working directory.
	Path           string `yaml:"path"`
	Algorithm      string `yaml:"algorithm"`
	FollowSymlinks bool   `yaml:"follow_symlinks"`
	// FoldCase makes the symlink-following walk treat paths differing only
	// in case as the same location.
	FoldCase       bool   `yaml:"fold_case"`
	Format         string `yaml:"format"`
	Template       string `yaml:"template"`
	Verbose        bool   `yaml:"verbose"`
}

// Default returns the settings used when neither a file nor a flag sets them.
func Default() Config {
	return Config{
		Algorithm: digest.DefaultAlgorithm,
		FoldCase:  fstree.CaseInsensitive,
		Format:    string(report.FormatText),
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are rejected
// so a typo does not silently fall back to a default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that can be checked without touching the
// file system. The algorithm is left to the digest commands, the only
// ones that use it.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil
}

// RootPath returns Path, or the working directory when Path is empty.
func (c Config) RootPath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	return os.Getwd()
}
