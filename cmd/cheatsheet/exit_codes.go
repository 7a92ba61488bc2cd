package main

import (
	"errors"
	"os"

	cheatsheet "github.com/alnah/go-cheatsheet"
	"github.com/alnah/go-cheatsheet/internal/config"
)

// Exit codes for the cheatsheet CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General error, including isolated cheatsheet failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, cheatsheet.ErrBrowserConnect) ||
		errors.Is(err, cheatsheet.ErrPageCreate) ||
		errors.Is(err, cheatsheet.ErrPageLoad) ||
		errors.Is(err, cheatsheet.ErrPDFGeneration) {
		return ExitBrowser
	}

	// A finished build with isolated failures (exit 1)
	if errors.Is(err, cheatsheet.ErrBuildFailed) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, cheatsheet.ErrInvalidPaths) ||
		errors.Is(err, cheatsheet.ErrInvalidTemplatesDir) ||
		errors.Is(err, cheatsheet.ErrInvalidRetention) ||
		errors.Is(err, cheatsheet.ErrTemplateNotFound) ||
		errors.Is(err, cheatsheet.ErrInitializerNotFound) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cheatsheet.ErrCheatsheetDirNotFound) ||
		errors.Is(err, cheatsheet.ErrReadConfig) ||
		errors.Is(err, cheatsheet.ErrReadMarkdown) ||
		errors.Is(err, cheatsheet.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
