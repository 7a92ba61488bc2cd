package cheatsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-cheatsheet/internal/output"
	"github.com/alnah/go-cheatsheet/internal/repository"
	"github.com/alnah/go-cheatsheet/internal/templates"
)

// Builder turns a cheatsheets directory into a static site.
// Create with NewBuilder, run Build as often as needed, and Close when done.
// A Builder must not run two builds at once.
type Builder struct {
	cheatsheetsDir string
	templatesDir   string
	outputDir      string
	failFast       bool
	indexTitle     string
	indexDate      string
	now            func() time.Time
	logger         *slog.Logger
	extraInits     []namedInitializer

	pdf        pdfRenderer // nil when PDF export is disabled
	pdfTimeout time.Duration

	templates templates.Loader
	factory   *Factory
}

// NewBuilder creates a Builder. Paths default to DefaultCheatsheetsDir and
// DefaultOutputDir and templates to the built-in set.
// Returns error if the templates directory is invalid, an initializer
// cannot be registered, or the output root would overlap the sources.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cheatsheetsDir: DefaultCheatsheetsDir,
		outputDir:      DefaultOutputDir,
		indexTitle:     DefaultIndexTitle,
		now:            time.Now,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		pdfTimeout:     defaultPDFTimeout,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.validatePaths(); err != nil {
		return nil, err
	}

	resolver, err := templates.NewResolver(b.templatesDir)
	if err != nil {
		return nil, err
	}
	b.templates = resolver

	inits := initializers.Clone()
	for _, ni := range b.extraInits {
		if err := inits.Register(ni.name, ni.fn); err != nil {
			return nil, err
		}
	}
	b.factory = newFactory(resolver, inits)

	return b, nil
}

// validatePaths rejects configurations where clearing the output root would
// delete the sources or templates.
func (b *Builder) validatePaths() error {
	if b.cheatsheetsDir == "" || b.outputDir == "" {
		return fmt.Errorf("%w: cheatsheets and output directories are required", ErrInvalidPaths)
	}
	out, err := filepath.Abs(b.outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPaths, err)
	}
	for _, p := range []string{b.cheatsheetsDir, b.templatesDir} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPaths, err)
		}
		if within(abs, out) || within(out, abs) {
			return fmt.Errorf("%w: output %s overlaps %s", ErrInvalidPaths, b.outputDir, p)
		}
	}
	return nil
}

// within reports whether path equals root or lies beneath it.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// OutputDir returns the output root.
func (b *Builder) OutputDir() string {
	return b.outputDir
}

// Build clears the output root, compiles every cheatsheet in directory order,
// then renders the index over the successful ones.
//
// A failing cheatsheet is recorded in BuildResult.Failures and the build goes
// on; the returned error then wraps ErrBuildFailed and each failure. With
// WithFailFast the first failure is returned immediately. Cancelling ctx stops
// the build between cheatsheets.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := b.now()
	result := &BuildResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	b.factory.reset()

	if err := output.Clear(b.outputDir); err != nil {
		return result, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	b.logger.Debug("output cleared", "dir", b.outputDir)

	slugs, err := repository.List(b.cheatsheetsDir)
	if err != nil {
		return result, err
	}
	b.logger.Debug("cheatsheets found", "count", len(slugs))

	r := newRun(b)
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rc, err := r.compile(ctx, slug)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			err = fmt.Errorf("cheatsheet %q: %w", slug, err)
			if b.failFast {
				return result, err
			}
			b.logger.Error("cheatsheet failed", "slug", slug, "error", err)
			result.Failures = append(result.Failures, Failure{Slug: slug, Err: err})
			continue
		}

		b.logger.Info("cheatsheet built", "slug", slug, "template", rc.Template)
		result.Cheatsheets = append(result.Cheatsheets, rc)
	}

	names, err := r.buildIndex(ctx, result.Cheatsheets)
	if err != nil {
		return result, err
	}
	result.Templates = names
	result.Duration = b.now().Sub(start)

	if len(result.Failures) > 0 {
		errs := make([]error, 0, len(result.Failures)+1)
		errs = append(errs, ErrBuildFailed)
		for _, f := range result.Failures {
			errs = append(errs, f.Err)
		}
		return result, errors.Join(errs...)
	}
	return result, nil
}

// Close releases the headless browser used for PDF export, if any.
func (b *Builder) Close() error {
	if b.pdf != nil {
		return b.pdf.Close()
	}
	return nil
}

// run holds state shared by the steps of a single build.
type run struct {
	*Builder
	partials          map[string]string
	commonStyleCopied bool
}

func newRun(b *Builder) *run {
	return &run{Builder: b}
}
