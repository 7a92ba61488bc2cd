package templates

import (
	"io/fs"
	"sort"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no templates directory configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded templates are used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// NewResolverFromLoaders builds a Resolver over arbitrary loaders.
// custom may be nil.
func NewResolverFromLoaders(custom, embedded Loader) *Resolver {
	return &Resolver{custom: custom, embedded: embedded}
}

// Template loads a template, trying the custom loader first.
func (r *Resolver) Template(name string) (*Template, error) {
	return withFallback(r, func(l Loader) (*Template, error) {
		return l.Template(name)
	})
}

// Main returns the custom main area if present, else the embedded one.
func (r *Resolver) Main() (fs.FS, error) {
	return withFallback(r, Loader.Main)
}

// CommonStyle returns the custom shared stylesheet if present, else the embedded one.
func (r *Resolver) CommonStyle() ([]byte, error) {
	return withFallback(r, Loader.CommonStyle)
}

// Names returns the union of custom and embedded template names, sorted.
func (r *Resolver) Names() ([]string, error) {
	names, err := r.embedded.Names()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.Names()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names)+len(custom))
	var merged []string
	for _, n := range append(names, custom...) {
		if !seen[n] {
			seen[n] = true
			merged = append(merged, n)
		}
	}
	sort.Strings(merged)
	return merged, nil
}

// Partials returns embedded partials overlaid with custom ones of the same file name.
func (r *Resolver) Partials() (map[string]string, error) {
	partials, err := r.embedded.Partials()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return partials, nil
	}

	custom, err := r.custom.Partials()
	if err != nil {
		return nil, err
	}
	for k, v := range custom {
		partials[k] = v
	}
	return partials, nil
}

// HasCustomLoader returns true if a templates directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// withFallback implements the custom-first, fallback-to-embedded logic.
// Only not-found errors fall back; validation and I/O errors are returned.
func withFallback[T any](r *Resolver, load func(Loader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil {
		return v, nil
	}
	if !isNotFoundError(err) {
		return v, err
	}
	return load(r.embedded)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
