// Package fileutil provides file copy and write helpers used when
// materializing the output tree.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ErrNotDirectory indicates a copy source exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// SkipFunc reports whether a slash-separated path inside the copied tree
// should be left out. Directories that are skipped are not descended into.
type SkipFunc func(name string, d fs.DirEntry) bool

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFile atomically replaces dst with data. Readers never observe a
// partially written page: the content goes to a temp file that is renamed.
func WriteFile(dst string, data []byte) error {
	if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	// The temp file is created owner-only; published pages must be readable.
	if err := os.Chmod(dst, FilePermissions); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	return nil
}

// CopyFile copies the file name from fsys to dst on disk, creating the parent
// directory of dst when needed.
func CopyFile(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), DirPermissions); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions) // #nosec G304 -- output path built from validated names
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", name, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// CopyDir recursively copies the tree rooted at root in fsys into dst,
// preserving relative paths. skip may be nil.
func CopyDir(fsys fs.FS, root, dst string, skip SkipFunc) error {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if name != root && skip != nil && skip(name, d) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
		if root == "." {
			rel = name
			if name == "." {
				rel = ""
			}
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, DirPermissions); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		return CopyFile(fsys, name, target)
	})
}
