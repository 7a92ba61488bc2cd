package markdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when a template names none.
const DefaultHighlightStyle = "github"

// ErrInvalidHighlightStyle indicates a chroma style name that is not registered.
var ErrInvalidHighlightStyle = errors.New("unknown highlight style")

// Settings holds the markdown section of a template manifest.
type Settings struct {
	// Unsafe lets raw HTML in the markdown source through to the page.
	Unsafe    bool      `yaml:"unsafe"`
	Highlight Highlight `yaml:"highlight"`
}

// Highlight configures chroma code highlighting.
type Highlight struct {
	Style       string `yaml:"style"`
	LineNumbers bool   `yaml:"lineNumbers"`
	// Classes emits CSS classes instead of inline styles; the page then
	// needs the stylesheet produced by WriteCSS.
	Classes bool `yaml:"classes"`
}

// StyleName returns the configured style or DefaultHighlightStyle.
func (h Highlight) StyleName() string {
	if h.Style == "" {
		return DefaultHighlightStyle
	}
	return h.Style
}

// Validate checks the style name against the chroma registry.
func (h Highlight) Validate() error {
	_, err := h.style()
	return err
}

func (h Highlight) style() (*chroma.Style, error) {
	name := h.StyleName()
	s, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, name)
	}
	return s, nil
}

func (h Highlight) formatOptions() []chromahtml.Option {
	return []chromahtml.Option{
		chromahtml.WithClasses(h.Classes),
		chromahtml.WithLineNumbers(h.LineNumbers),
	}
}

// WriteCSS writes the class-based stylesheet for the configured style.
func (h Highlight) WriteCSS(w io.Writer) error {
	s, err := h.style()
	if err != nil {
		return err
	}
	return chromahtml.New(h.formatOptions()...).WriteCSS(w, s)
}
