package cheatsheet

import (
	"html/template"
	"log/slog"
	"time"

	"github.com/alnah/go-cheatsheet/internal/markdown"
)

// Config is the per-cheatsheet config.json.
type Config struct {
	Template       string         `json:"template"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	MainColor      string         `json:"mainColor"`
	SecondaryColor string         `json:"secondaryColor"`
	Icon           string         `json:"icon"`
	TemplateParams map[string]any `json:"templateParams"`
}

// RenderContext is the data a layout is executed against. It is built once
// per cheatsheet and kept for the index page.
type RenderContext struct {
	Slug           string
	Title          string
	Description    string
	MainColor      template.CSS // passed through unchanged, see cssValue
	SecondaryColor template.CSS
	Icon           string
	Template       string
	Content        template.HTML
	Params         map[string]any
}

// Param returns the merged param named key, or "" when absent.
func (rc *RenderContext) Param(key string) any {
	return param(rc.Params, key)
}

// IndexPage is the data main area templates are executed against.
type IndexPage struct {
	Title       string
	Generated   string
	Cheatsheets []*RenderContext
	Templates   []string
}

// Failure records a cheatsheet that could not be built.
type Failure struct {
	Slug string
	Err  error
}

// BuildResult summarizes a build.
type BuildResult struct {
	Cheatsheets []*RenderContext // successfully built, in build order
	Failures    []Failure
	Templates   []string // template names listed on the index
	Duration    time.Duration
}

// Engine is the markdown engine handed to initializers.
type Engine = markdown.Engine

// MarkdownSettings is the markdown section of a template.yaml.
type MarkdownSettings = markdown.Settings

// Initializer configures the markdown engine for a template. Templates
// select one by name through the initializer key of template.yaml.
type Initializer = markdown.Initializer

// Option configures a Builder.
type Option func(*Builder)

// Defaults used when no option overrides them.
const (
	DefaultCheatsheetsDir = "cheatsheets"
	DefaultOutputDir      = "dist"
	DefaultIndexTitle     = "Cheatsheets"
	defaultPDFTimeout     = 30 * time.Second
)

// WithCheatsheetsDir sets the directory holding one sub-directory per cheatsheet.
func WithCheatsheetsDir(dir string) Option {
	return func(b *Builder) {
		b.cheatsheetsDir = dir
	}
}

// WithTemplatesDir sets a templates directory that overrides the built-in
// templates. Empty keeps the built-in templates only.
func WithTemplatesDir(dir string) Option {
	return func(b *Builder) {
		b.templatesDir = dir
	}
}

// WithOutputDir sets the output root. It is wiped at the start of every build.
func WithOutputDir(dir string) Option {
	return func(b *Builder) {
		b.outputDir = dir
	}
}

// WithFailFast aborts the build on the first cheatsheet error instead of
// recording it and continuing.
func WithFailFast(enabled bool) Option {
	return func(b *Builder) {
		b.failFast = enabled
	}
}

// WithIndexTitle sets the index page title.
func WithIndexTitle(title string) Option {
	return func(b *Builder) {
		b.indexTitle = title
	}
}

// WithIndexDate sets the index date: "", a literal, "auto" or "auto:FORMAT".
func WithIndexDate(value string) Option {
	return func(b *Builder) {
		b.indexDate = value
	}
}

// WithLogger sets the build logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithPDF enables PDF export of every cheatsheet through headless Chrome.
// Panics if timeout <= 0 (programmer error, similar to time.NewTicker).
func WithPDF(timeout time.Duration) Option {
	if timeout <= 0 {
		panic("cheatsheet: WithPDF timeout must be positive")
	}
	return func(b *Builder) {
		b.pdfTimeout = timeout
		if b.pdf == nil {
			b.pdf = newRodRenderer(timeout)
		}
	}
}

// WithInitializer registers an initializer for this builder only.
func WithInitializer(name string, fn Initializer) Option {
	return func(b *Builder) {
		b.extraInits = append(b.extraInits, namedInitializer{name: name, fn: fn})
	}
}

// WithClock sets the time source used for the index date and durations.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// withPDFRenderer injects a renderer (tests).
func withPDFRenderer(r pdfRenderer) Option {
	return func(b *Builder) {
		b.pdf = r
	}
}
