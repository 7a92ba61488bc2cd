package templates

import (
	"embed"
	"io/fs"
)

//go:embed builtin
var builtin embed.FS

// EmbeddedLoader loads the built-in templates compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct {
	fsLoader
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	sub, err := fs.Sub(builtin, "builtin")
	if err != nil {
		// builtin is a compile-time constant directory.
		panic(err)
	}
	return &EmbeddedLoader{fsLoader{fsys: sub}}
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
