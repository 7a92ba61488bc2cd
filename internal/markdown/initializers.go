package markdown

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Initializer configures a fresh engine for one template.
type Initializer func(e *Engine, s Settings) error

// Built-in initializer names.
const (
	InitDefault  = "default"
	InitExtended = "extended"
	InitPlain    = "plain"
)

// Registry errors.
var (
	ErrInitializerNotFound = errors.New("markdown initializer not found")
	ErrInvalidInitializer  = errors.New("invalid markdown initializer")
)

// Registry maps initializer names to functions. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	inits map[string]Initializer
}

// NewRegistry returns a registry holding the built-in initializers.
func NewRegistry() *Registry {
	return &Registry{inits: map[string]Initializer{
		InitDefault:  Default,
		InitExtended: Extended,
		InitPlain:    Plain,
	}}
}

// Register adds or replaces an initializer.
func (r *Registry) Register(name string, fn Initializer) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: name and function are required", ErrInvalidInitializer)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inits[name] = fn
	return nil
}

// Lookup returns the initializer registered under name.
func (r *Registry) Lookup(name string) (Initializer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.inits[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInitializerNotFound, name)
	}
	return fn, nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{inits: make(map[string]Initializer, len(r.inits))}
	for k, v := range r.inits {
		c.inits[k] = v
	}
	return c
}

// Names returns registered initializer names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.inits))
	for k := range r.inits {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Default enables GFM, footnotes, heading ids and chroma highlighting.
func Default(e *Engine, s Settings) error {
	if err := s.Highlight.Validate(); err != nil {
		return err
	}
	if err := e.Use(
		extension.GFM,
		extension.Footnote,
		highlighting.NewHighlighting(
			highlighting.WithStyle(s.Highlight.StyleName()),
			highlighting.WithFormatOptions(s.Highlight.formatOptions()...),
		),
	); err != nil {
		return err
	}
	if err := e.WithParserOptions(parser.WithAutoHeadingID()); err != nil {
		return err
	}
	return applyUnsafe(e, s)
}

// Extended is Default plus definition lists and typographic punctuation.
func Extended(e *Engine, s Settings) error {
	if err := Default(e, s); err != nil {
		return err
	}
	return e.Use(extension.DefinitionList, extension.Typographer)
}

// Plain renders CommonMark without highlighting.
func Plain(e *Engine, s Settings) error {
	return applyUnsafe(e, s)
}

func applyUnsafe(e *Engine, s Settings) error {
	if !s.Unsafe {
		return nil
	}
	return e.WithRendererOptions(html.WithUnsafe())
}
