package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	flag "github.com/spf13/pflag"

	cheatsheet "github.com/alnah/go-cheatsheet"
	"github.com/alnah/go-cheatsheet/internal/config"
)

// runBuild generates the site once.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := resolveSite(&flags.common, &flags.site, flags.changed)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	builder, err := cheatsheet.NewBuilder(builderOptions(cfg, logger, env)...)
	if err != nil {
		return err
	}
	defer builder.Close()

	result, buildErr := builder.Build(ctx)
	if !flags.common.quiet {
		printSummary(env.Stdout, result, builder.OutputDir(), flags.common.verbose)
	}
	return buildErr
}

// resolveSite loads the config, applies environment and flag overrides, and
// validates the result.
func resolveSite(common *commonFlags, site *siteFlags, changed map[string]bool) (*config.Config, error) {
	cfg, err := loadSiteConfig(common.config, loadEnvConfig())
	if err != nil {
		return nil, err
	}
	if err := mergeSiteFlags(site, changed, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printSummary prints one line per cheatsheet and a closing count.
func printSummary(w io.Writer, result *cheatsheet.BuildResult, outputDir string, verbose bool) {
	if result == nil {
		return
	}
	for _, rc := range result.Cheatsheets {
		fmt.Fprintf(w, "  ok    %s (%s)\n", rc.Slug, rc.Template)
	}
	for _, f := range result.Failures {
		fmt.Fprintf(w, "  FAIL  %s: %v\n", f.Slug, unwrapFailure(f.Err))
	}

	built := len(result.Cheatsheets)
	switch {
	case len(result.Failures) > 0:
		fmt.Fprintf(w, "%d built, %d failed\n", built, len(result.Failures))
	case verbose:
		fmt.Fprintf(w, "%d built into %s in %v\n", built, outputDir, result.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(w, "%d built into %s\n", built, outputDir)
	}
}

// unwrapFailure drops the cheatsheet prefix already printed with the slug.
func unwrapFailure(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

// buildOnce runs a build for serve. Build errors are logged, not returned,
// so the preview keeps running; only cancellation stops it.
func buildOnce(ctx context.Context, b *cheatsheet.Builder, logger *slog.Logger) error {
	result, err := b.Build(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		logger.Error("build failed", slog.String("error", err.Error()))
	}
	logger.Info("site built",
		slog.Int("built", len(result.Cheatsheets)),
		slog.Int("failed", len(result.Failures)),
		slog.Duration("duration", result.Duration))
	return nil
}
