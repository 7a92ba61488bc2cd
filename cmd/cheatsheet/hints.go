package main

import (
	"context"
	"errors"

	cheatsheet "github.com/alnah/go-cheatsheet"
	"github.com/alnah/go-cheatsheet/internal/config"
	"github.com/alnah/go-cheatsheet/internal/hints"
)

// errorWithHints formats err followed by every matching hint.
func errorWithHints(err error) string {
	msg := "error: " + err.Error()

	switch {
	case errors.Is(err, cheatsheet.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, cheatsheet.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForPDFTimeout()
	}

	if errors.Is(err, config.ErrConfigNotFound) {
		msg += hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	}
	if errors.Is(err, cheatsheet.ErrCheatsheetDirNotFound) {
		msg += hints.ForCheatsheetsDir()
	}
	if errors.Is(err, cheatsheet.ErrWriteOutput) {
		msg += hints.ForOutputDirectory()
	}
	if errors.Is(err, cheatsheet.ErrTemplateNotFound) {
		msg += hints.ForTemplateNotFound(builtinTemplates())
	}
	if errors.Is(err, cheatsheet.ErrInitializerNotFound) {
		msg += hints.ForInitializerNotFound(cheatsheet.Initializers())
	}
	return msg
}

// builtinTemplates lists the embedded template names, or nil on error.
func builtinTemplates() []string {
	f, err := cheatsheet.NewFactory("")
	if err != nil {
		return nil
	}
	names, err := f.Templates()
	if err != nil {
		return nil
	}
	return names
}
