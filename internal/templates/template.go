package templates

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-cheatsheet/internal/markdown"
	"github.com/alnah/go-cheatsheet/internal/yamlutil"
)

// Reserved areas and well-known file names.
const (
	MainDir        = "main"
	PartialsDir    = "partials"
	CommonStyle    = "common.css"
	LayoutFile     = "cheatsheet.html.tmpl"
	StyleFile      = "style.css"
	ManifestFile   = "template.yaml"
	TemplateSuffix = ".tmpl"
)

// Manifest is the decoded template.yaml of a template.
type Manifest struct {
	// Initializer names the markdown initializer; empty means "default".
	Initializer string            `yaml:"initializer"`
	Params      map[string]any    `yaml:"params"`
	Markdown    markdown.Settings `yaml:"markdown"`
}

// Template is a named presentation template.
type Template struct {
	Name     string
	Manifest Manifest
	fsys     fs.FS
}

// InitializerName returns the configured initializer or the default one.
func (t *Template) InitializerName() string {
	if t.Manifest.Initializer == "" {
		return markdown.InitDefault
	}
	return t.Manifest.Initializer
}

// Defaults returns a copy of the template's default params.
func (t *Template) Defaults() map[string]any {
	out := make(map[string]any, len(t.Manifest.Params))
	for k, v := range t.Manifest.Params {
		out[k] = v
	}
	return out
}

// Layout returns the cheatsheet page layout source.
func (t *Template) Layout() (string, error) {
	data, err := t.read(LayoutFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Style returns the template stylesheet.
func (t *Template) Style() ([]byte, error) {
	return t.read(StyleFile)
}

func (t *Template) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(t.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %w", ErrTemplateRead, t.Name, name, err)
	}
	return data, nil
}

// loadManifest decodes template.yaml from dir. A missing manifest yields
// the zero Manifest.
func loadManifest(dir fs.FS, name string) (Manifest, error) {
	var m Manifest
	data, err := fs.ReadFile(dir, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("%w: %s: %v", ErrTemplateRead, name, err)
	}
	if len(data) == 0 {
		return m, nil
	}
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return m, fmt.Errorf("%w: %s: %v", ErrManifest, name, err)
	}
	return m, nil
}
