// Package config loads and validates the site configuration file
// (cheatsheets.yaml) that drives a build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-cheatsheet/internal/dateutil"
	"github.com/alnah/go-cheatsheet/internal/fileutil"
	"github.com/alnah/go-cheatsheet/internal/yamlutil"
)

// DefaultName is the config name searched when none is given.
const DefaultName = "cheatsheets"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Config holds all configuration for a site build.
type Config struct {
	CheatsheetsDir string      `yaml:"cheatsheetsDir"`
	TemplatesDir   string      `yaml:"templatesDir"` // Empty = built-in templates only
	OutputDir      string      `yaml:"outputDir"`
	FailFast       bool        `yaml:"failFast"`
	Index          IndexConfig `yaml:"index"`
	Prune          PruneConfig `yaml:"prune"`
	PDF            PDFConfig   `yaml:"pdf"`
	Serve          ServeConfig `yaml:"serve"`
}

// IndexConfig defines index page options.
type IndexConfig struct {
	Title string `yaml:"title"`
	// Date is "", a literal, "auto" or "auto:FORMAT". Empty keeps builds reproducible.
	Date string `yaml:"date"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Date, validation.Length(0, 60), validation.By(validDate)),
	)
}

func validDate(value any) error {
	s, _ := value.(string)
	_, err := dateutil.Resolve(s, time.Time{})
	return err
}

// PruneConfig defines retention of generated artifacts.
type PruneConfig struct {
	Keep int `yaml:"keep"`
}

// Validate validates the prune configuration.
func (c *PruneConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Keep, validation.Min(0)),
	)
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the PDF configuration.
func (c *PDFConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Second), validation.Max(10*time.Minute)),
	)
}

// ServeConfig defines the preview server.
type ServeConfig struct {
	Port     int           `yaml:"port"`
	Debounce time.Duration `yaml:"debounce"`
}

// Address returns the preview server listen address.
func (c *ServeConfig) Address() string {
	return fmt.Sprintf("127.0.0.1:%d", c.Port)
}

// Validate validates the serve configuration.
func (c *ServeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Debounce, validation.Min(10*time.Millisecond), validation.Max(time.Minute)),
	)
}

// Validate checks every section and wraps the first failure in ErrConfigInvalid.
// Called by LoadConfig, and again by the CLI after flag and environment overrides.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.CheatsheetsDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if filepath.Clean(c.CheatsheetsDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("%w: outputDir must differ from cheatsheetsDir", ErrConfigInvalid)
	}

	sections := []struct {
		name string
		v    validation.Validatable
	}{
		{"index", &c.Index},
		{"prune", &c.Prune},
		{"pdf", &c.PDF},
		{"serve", &c.Serve},
	}
	for _, s := range sections {
		if err := s.v.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigInvalid, s.name, err)
		}
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		CheatsheetsDir: "cheatsheets",
		OutputDir:      "dist",
		Index:          IndexConfig{Title: "Cheatsheets"},
		Prune:          PruneConfig{Keep: 5},
		PDF:            PDFConfig{Timeout: 30 * time.Second},
		Serve:          ServeConfig{Port: 8080, Debounce: 300 * time.Millisecond},
	}
}

// LoadConfig loads configuration from a file path or config name on top of
// DefaultConfig. If nameOrPath contains a path separator, it's treated as a
// file path. Otherwise, it's searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg, true); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory under go-cheatsheet/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-cheatsheet", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
