package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	cheatsheet "github.com/alnah/go-cheatsheet"
)

// runPrune removes old generated-prefixed entries from the output root.
func runPrune(args []string, env *Environment) error {
	flags, err := parsePruneFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	if flags.changed["out"] {
		cfg.OutputDir = flags.out
	}
	if flags.changed["keep"] {
		cfg.Prune.Keep = flags.keep
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	removed, err := cheatsheet.Prune(cfg.OutputDir, cfg.Prune.Keep)
	for _, name := range removed {
		logger.Debug("pruned", "entry", name)
	}
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%d removed from %s, keeping %d\n", len(removed), cfg.OutputDir, cfg.Prune.Keep)
	}
	return nil
}
