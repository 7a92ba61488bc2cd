package cheatsheet

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeFile creates path with content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// exists reports whether path exists.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// site is a temporary cheatsheets directory with its output root.
type site struct {
	root string
	src  string
	out  string
}

func newSite(t *testing.T) *site {
	t.Helper()

	root := t.TempDir()
	s := &site{
		root: root,
		src:  filepath.Join(root, "cheatsheets"),
		out:  filepath.Join(root, "dist"),
	}
	if err := os.MkdirAll(s.src, 0o755); err != nil {
		t.Fatalf("failed to create cheatsheets dir: %v", err)
	}
	return s
}

// add creates a cheatsheet with the given config.json and index.md.
func (s *site) add(t *testing.T, slug, config, markdown string) {
	t.Helper()

	writeFile(t, filepath.Join(s.src, slug, "config.json"), config)
	writeFile(t, filepath.Join(s.src, slug, "index.md"), markdown)
}

func (s *site) builder(t *testing.T, opts ...Option) *Builder {
	t.Helper()

	base := []Option{WithCheatsheetsDir(s.src), WithOutputDir(s.out)}
	b, err := NewBuilder(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

// snapshot maps every file under root to its content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return files
}

// mockPDFRenderer records rendered pages without a browser.
type mockPDFRenderer struct {
	mu     sync.Mutex
	pages  []string
	err    error
	closed bool
}

func (m *mockPDFRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.pages = append(m.pages, filePath)
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFRenderer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
