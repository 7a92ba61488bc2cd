package fileutil_test

// Notes:
// - CopyFile close-error branch is not tested: triggering a close failure on a
//   regular file is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/alnah/go-cheatsheet/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Path probes
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "style.css")
	if err := os.WriteFile(file, []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "absent"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "index.md")
	if err := os.WriteFile(file, []byte("# Hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists(absent) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"cheatsheets", false},
		{"./cheatsheets.yaml", true},
		{"/etc/cheatsheets.yaml", true},
		{"conf\\site.yaml", true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Atomic writes
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dst := filepath.Join(t.TempDir(), "cheatsheet.html")

	if err := fileutil.WriteFile(dst, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fileutil.WriteFile(dst, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

// ---------------------------------------------------------------------------
// TestCopyFile - Single file copy from an fs.FS
// ---------------------------------------------------------------------------

func TestCopyFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"basic/style.css": &fstest.MapFile{Data: []byte("h1 { color: red; }")},
	}

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dst := filepath.Join(t.TempDir(), "alpha", "nested", "style.css")
		if err := fileutil.CopyFile(fsys, "basic/style.css", dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}
		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != "h1 { color: red; }" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CopyFile(fsys, "basic/absent.css", filepath.Join(t.TempDir(), "x.css"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCopyDir - Recursive copy with skip
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"main/index.html.tmpl":   &fstest.MapFile{Data: []byte("{{.Title}}")},
		"main/favicon.ico":       &fstest.MapFile{Data: []byte("ico")},
		"main/img/logo.png":      &fstest.MapFile{Data: []byte("png")},
		"main/img/deep/icon.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}

	t.Run("copies nested files with relative paths", func(t *testing.T) {
		t.Parallel()

		dst := t.TempDir()
		skip := func(name string, d fs.DirEntry) bool {
			return !d.IsDir() && strings.HasSuffix(name, ".tmpl")
		}
		if err := fileutil.CopyDir(fsys, "main", dst, skip); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}

		for rel, want := range map[string]string{
			"favicon.ico":       "ico",
			"img/logo.png":      "png",
			"img/deep/icon.svg": "<svg/>",
		} {
			got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
			if err != nil {
				t.Errorf("missing %s: %v", rel, err)
				continue
			}
			if string(got) != want {
				t.Errorf("%s = %q, want %q", rel, got, want)
			}
		}

		if fileutil.FileExists(filepath.Join(dst, "index.html.tmpl")) {
			t.Error("skipped file was copied")
		}
	})

	t.Run("dot root copies whole filesystem", func(t *testing.T) {
		t.Parallel()

		dst := t.TempDir()
		if err := fileutil.CopyDir(fsys, ".", dst, nil); err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if !fileutil.FileExists(filepath.Join(dst, "main", "img", "logo.png")) {
			t.Error("main/img/logo.png not copied")
		}
	})

	t.Run("file root is rejected", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CopyDir(fsys, "main/favicon.ico", t.TempDir(), nil)
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CopyDir(fsys, "absent", t.TempDir(), nil)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist", err)
		}
	})
}
