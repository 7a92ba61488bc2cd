// Package repository reads the cheatsheet source tree: one sub-directory per
// cheatsheet, each holding a config.json, an index.md and optional assets.
package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File and directory names expected inside a cheatsheet directory.
const (
	ConfigFile   = "config.json"
	MarkdownFile = "index.md"
	AssetsDir    = "assets"
)

// ErrCheatsheetDirNotFound indicates the cheatsheet root cannot be listed.
var ErrCheatsheetDirNotFound = errors.New("cheatsheets directory not found")

// List returns the names of the immediate sub-directories of root in
// directory read order. Hidden directories are skipped; files are ignored.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrCheatsheetDirNotFound, root, err)
		}
		return nil, fmt.Errorf("listing cheatsheets in %s: %w", root, err)
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		slugs = append(slugs, e.Name())
	}
	return slugs, nil
}

// Source locates the files of a single cheatsheet.
type Source struct {
	Slug     string
	Dir      string
	Config   string
	Markdown string
	Assets   string
}

// NewSource returns the paths of the cheatsheet named slug under root.
// Nothing is read from disk.
func NewSource(root, slug string) Source {
	dir := filepath.Join(root, slug)
	return Source{
		Slug:     slug,
		Dir:      dir,
		Config:   filepath.Join(dir, ConfigFile),
		Markdown: filepath.Join(dir, MarkdownFile),
		Assets:   filepath.Join(dir, AssetsDir),
	}
}

// HasAssets reports whether the cheatsheet carries an assets directory.
func (s Source) HasAssets() bool {
	info, err := os.Stat(s.Assets)
	return err == nil && info.IsDir()
}
