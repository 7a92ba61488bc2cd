package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads templates from a directory on the filesystem.
// Implements Loader interface.
type FilesystemLoader struct {
	fsLoader
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{
		fsLoader: fsLoader{fsys: os.DirFS(absPath)},
		basePath: absPath,
	}, nil
}

// Template loads a template directory after checking it stays within basePath.
func (f *FilesystemLoader) Template(name string) (*Template, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := f.verifyPathContainment(filepath.Join(f.basePath, name)); err != nil {
		return nil, err
	}
	return f.fsLoader.Template(name)
}

// BasePath returns the resolved templates directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// verifyPathContainment ensures the resolved path is within basePath.
// Symlinks are resolved so a link pointing outside basePath is rejected.
func (f *FilesystemLoader) verifyPathContainment(target string) error {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing target keeps its lexical path; reading it fails later.
	if realPath, err := filepath.EvalSymlinks(absTarget); err == nil {
		absTarget = realPath
	}

	if !strings.HasPrefix(absTarget, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
