package templates

import "io/fs"

// Loader defines the contract for loading templates and shared files.
type Loader interface {
	// Template loads a template by directory name.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidTemplateName if the name is unsafe or reserved.
	Template(name string) (*Template, error)

	// Names lists available template names, sorted.
	Names() ([]string, error)

	// Main returns the main area used to build index pages.
	// Returns ErrMainNotFound if there is none.
	Main() (fs.FS, error)

	// Partials returns partial templates keyed by file name.
	Partials() (map[string]string, error)

	// CommonStyle returns the shared stylesheet.
	// Returns ErrCommonStyleNotFound if there is none.
	CommonStyle() ([]byte, error)
}
