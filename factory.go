package cheatsheet

import (
	"fmt"
	"sync"

	"github.com/alnah/go-cheatsheet/internal/markdown"
	"github.com/alnah/go-cheatsheet/internal/templates"
)

// initializers holds the process-wide initializer registry. Builders take a
// copy when they are created.
var initializers = markdown.NewRegistry()

// RegisterInitializer makes fn available to every Builder created afterwards
// under name. Registering an existing name replaces it.
func RegisterInitializer(name string, fn Initializer) error {
	return initializers.Register(name, fn)
}

// Initializers returns the names of the registered initializers, sorted.
func Initializers() []string {
	return initializers.Names()
}

type namedInitializer struct {
	name string
	fn   Initializer
}

// Factory creates a freshly configured markdown engine per cheatsheet from
// the template it names. Templates are loaded once and cached.
type Factory struct {
	loader templates.Loader
	inits  *markdown.Registry

	mu    sync.Mutex
	cache map[string]*templates.Template
}

// NewFactory returns a Factory over the built-in templates, overridden by
// templatesDir when it is not empty.
func NewFactory(templatesDir string) (*Factory, error) {
	resolver, err := templates.NewResolver(templatesDir)
	if err != nil {
		return nil, err
	}
	return newFactory(resolver, initializers.Clone()), nil
}

func newFactory(loader templates.Loader, inits *markdown.Registry) *Factory {
	return &Factory{
		loader: loader,
		inits:  inits,
		cache:  make(map[string]*templates.Template),
	}
}

// Create resolves templateName, creates a new engine and runs the template's
// initializer on it.
func (f *Factory) Create(templateName string) (*Engine, error) {
	tmpl, err := f.template(templateName)
	if err != nil {
		return nil, err
	}

	initFn, err := f.inits.Lookup(tmpl.InitializerName())
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", templateName, err)
	}

	engine := markdown.New()
	if err := initFn(engine, tmpl.Manifest.Markdown); err != nil {
		return nil, fmt.Errorf("template %q: initializer %q: %w", templateName, tmpl.InitializerName(), err)
	}
	return engine, nil
}

// Templates returns the available template names.
func (f *Factory) Templates() ([]string, error) {
	return f.loader.Names()
}

// template loads and caches a template by name.
func (f *Factory) template(name string) (*templates.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.cache[name]; ok {
		return t, nil
	}
	t, err := f.loader.Template(name)
	if err != nil {
		return nil, err
	}
	f.cache[name] = t
	return t, nil
}

// reset drops cached templates so edits on disk are picked up.
func (f *Factory) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]*templates.Template)
}
