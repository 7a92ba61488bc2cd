package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-cheatsheet/internal/config"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "CHEATSHEET_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string        // CHEATSHEET_CONFIG: config name or path
	CheatsheetsDir string        // CHEATSHEET_SRC: cheatsheets directory
	TemplatesDir   string        // CHEATSHEET_TEMPLATES: custom templates directory
	OutputDir      string        // CHEATSHEET_OUT: output directory
	FailFast       *bool         // CHEATSHEET_FAIL_FAST: stop at first failure
	PDF            *bool         // CHEATSHEET_PDF: enable PDF export
	PDFTimeout     time.Duration // CHEATSHEET_PDF_TIMEOUT: per-page PDF timeout
	IndexTitle     string        // CHEATSHEET_TITLE: index title
	IndexDate      string        // CHEATSHEET_DATE: index date
	Keep           int           // CHEATSHEET_KEEP: prune retention (-1 = unset)
	Port           int           // CHEATSHEET_PORT: preview server port
}

// knownEnvVars lists valid CHEATSHEET_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHEATSHEET_CONFIG":      true,
	"CHEATSHEET_SRC":         true,
	"CHEATSHEET_TEMPLATES":   true,
	"CHEATSHEET_OUT":         true,
	"CHEATSHEET_FAIL_FAST":   true,
	"CHEATSHEET_PDF":         true,
	"CHEATSHEET_PDF_TIMEOUT": true,
	"CHEATSHEET_TITLE":       true,
	"CHEATSHEET_DATE":        true,
	"CHEATSHEET_KEEP":        true,
	"CHEATSHEET_PORT":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric, boolean and duration values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("CHEATSHEET_CONFIG"),
		CheatsheetsDir: os.Getenv("CHEATSHEET_SRC"),
		TemplatesDir:   os.Getenv("CHEATSHEET_TEMPLATES"),
		OutputDir:      os.Getenv("CHEATSHEET_OUT"),
		IndexTitle:     os.Getenv("CHEATSHEET_TITLE"),
		IndexDate:      os.Getenv("CHEATSHEET_DATE"),
		Keep:           -1,
	}

	cfg.FailFast = envBool("CHEATSHEET_FAIL_FAST")
	cfg.PDF = envBool("CHEATSHEET_PDF")

	if timeout := os.Getenv("CHEATSHEET_PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.PDFTimeout = d
		}
	}
	if keep := os.Getenv("CHEATSHEET_KEEP"); keep != "" {
		if k, err := strconv.Atoi(keep); err == nil && k >= 0 {
			cfg.Keep = k
		}
	}
	if port := os.Getenv("CHEATSHEET_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}

	return cfg
}

// envBool returns nil when name is unset or not a boolean.
func envBool(name string) *bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized CHEATSHEET_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over the file config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CheatsheetsDir != "" {
		cfg.CheatsheetsDir = env.CheatsheetsDir
	}
	if env.TemplatesDir != "" {
		cfg.TemplatesDir = env.TemplatesDir
	}
	if env.OutputDir != "" {
		cfg.OutputDir = env.OutputDir
	}
	if env.FailFast != nil {
		cfg.FailFast = *env.FailFast
	}
	if env.PDF != nil {
		cfg.PDF.Enabled = *env.PDF
	}
	if env.PDFTimeout > 0 {
		cfg.PDF.Timeout = env.PDFTimeout
	}
	if env.IndexTitle != "" {
		cfg.Index.Title = env.IndexTitle
	}
	if env.IndexDate != "" {
		cfg.Index.Date = env.IndexDate
	}
	if env.Keep >= 0 {
		cfg.Prune.Keep = env.Keep
	}
	if env.Port > 0 {
		cfg.Serve.Port = env.Port
	}
}
