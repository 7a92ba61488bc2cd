package cheatsheet

import (
	"errors"

	"github.com/alnah/go-cheatsheet/internal/markdown"
	"github.com/alnah/go-cheatsheet/internal/output"
	"github.com/alnah/go-cheatsheet/internal/repository"
	"github.com/alnah/go-cheatsheet/internal/templates"
)

// Sentinel errors for library operations.
var (
	// Cheatsheet compilation errors.
	ErrReadConfig      = errors.New("failed to read cheatsheet config")
	ErrConfigParse     = errors.New("failed to parse cheatsheet config")
	ErrMissingTemplate = errors.New("cheatsheet config has no template")
	ErrInvalidColor    = errors.New("color value cannot be used in CSS")
	ErrReadMarkdown    = errors.New("failed to read cheatsheet markdown")
	ErrRenderMarkdown  = errors.New("markdown rendering failed")

	// Page generation errors.
	ErrOutputExists   = errors.New("cheatsheet output directory already exists")
	ErrTemplateAsset  = errors.New("template file missing or unreadable")
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrWriteOutput    = errors.New("failed to write output")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Index errors.
	ErrMainTemplateMissing = errors.New("main template area missing")

	// Build errors.
	ErrBuildFailed  = errors.New("one or more cheatsheets failed to build")
	ErrInvalidPaths = errors.New("invalid build paths")
)

// Errors surfaced from internal packages, re-exported for errors.Is checks.
var (
	ErrTemplateNotFound      = templates.ErrTemplateNotFound
	ErrInvalidTemplateName   = templates.ErrInvalidTemplateName
	ErrInvalidTemplatesDir   = templates.ErrInvalidBasePath
	ErrInitializerNotFound   = markdown.ErrInitializerNotFound
	ErrInvalidHighlightStyle = markdown.ErrInvalidHighlightStyle
	ErrCheatsheetDirNotFound = repository.ErrCheatsheetDirNotFound
	ErrInvalidRetention      = output.ErrInvalidRetention
)
