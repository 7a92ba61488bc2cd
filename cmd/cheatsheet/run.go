package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for an unrecognized sub-command.
var ErrUnknownCommand = errors.New("unknown command")

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "prune":
		err = runPrune(rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "cheatsheet %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, errorWithHints(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// Short and long flags that consume the next argument when no value is
// attached.
const valueShorthands = "cstopk"

var valueFlags = map[string]bool{
	"--config": true, "--src": true, "--templates": true, "--out": true,
	"--pdf-timeout": true, "--title": true, "--date": true,
	"--port": true, "--debounce": true, "--keep": true,
}

// hasVerboseFlag reports whether -v or --verbose appears before a "--".
// Flag values such as "--title -dev" are skipped.
func hasVerboseFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return false
		case a == "--verbose" || a == "--verbose=true":
			return true
		case valueFlags[a]:
			i++
		case strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--"):
			verbose, skipNext := shortCluster(a[1:])
			if verbose {
				return true
			}
			if skipNext {
				i++
			}
		}
	}
	return false
}

// shortCluster scans combined short flags such as -qv or -vo. It stops at the
// first value flag, whose value is the rest of the cluster or, when the
// cluster ends there, the next argument. A cluster with an unknown letter is
// treated as a value.
func shortCluster(letters string) (verbose, skipNext bool) {
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == 'v':
			return true, false
		case c == 'q':
		case strings.IndexByte(valueShorthands, c) >= 0:
			return false, i == len(letters)-1
		default:
			return false, false
		}
	}
	return false, false
}
