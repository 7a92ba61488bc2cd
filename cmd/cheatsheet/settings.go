package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	cheatsheet "github.com/alnah/go-cheatsheet"
	"github.com/alnah/go-cheatsheet/internal/config"
)

// loadSiteConfig resolves the site config: an explicit --config or
// CHEATSHEET_CONFIG must exist; otherwise cheatsheets.yaml is used when found
// and the defaults when not. Environment overrides are applied on top.
func loadSiteConfig(configFlag string, env *envConfig) (*config.Config, error) {
	name := configFlag
	if name == "" {
		name = env.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeSiteFlags applies explicitly set site flags to cfg (CLI wins).
func mergeSiteFlags(f *siteFlags, changed map[string]bool, cfg *config.Config) error {
	if changed["src"] {
		cfg.CheatsheetsDir = f.src
	}
	if changed["templates"] {
		cfg.TemplatesDir = f.templates
	}
	if changed["out"] {
		cfg.OutputDir = f.out
	}
	if changed["fail-fast"] {
		cfg.FailFast = f.failFast
	}
	if changed["pdf"] {
		cfg.PDF.Enabled = f.pdf
	}
	if changed["pdf-timeout"] {
		d, err := time.ParseDuration(f.pdfTimeout)
		if err != nil {
			return fmt.Errorf("%w: --pdf-timeout: %v", ErrUsage, err)
		}
		cfg.PDF.Timeout = d
	}
	if changed["title"] {
		cfg.Index.Title = f.title
	}
	if changed["date"] {
		cfg.Index.Date = f.date
	}
	return nil
}

// newLogger returns a text logger on w: Warn when quiet, Debug when verbose,
// Info otherwise. quiet wins over verbose.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// builderOptions translates cfg into Builder options.
func builderOptions(cfg *config.Config, logger *slog.Logger, env *Environment) []cheatsheet.Option {
	opts := []cheatsheet.Option{
		cheatsheet.WithCheatsheetsDir(cfg.CheatsheetsDir),
		cheatsheet.WithTemplatesDir(cfg.TemplatesDir),
		cheatsheet.WithOutputDir(cfg.OutputDir),
		cheatsheet.WithFailFast(cfg.FailFast),
		cheatsheet.WithIndexTitle(cfg.Index.Title),
		cheatsheet.WithIndexDate(cfg.Index.Date),
		cheatsheet.WithLogger(logger),
		cheatsheet.WithClock(env.Now),
	}
	if cfg.PDF.Enabled {
		opts = append(opts, cheatsheet.WithPDF(cfg.PDF.Timeout))
	}
	return opts
}
