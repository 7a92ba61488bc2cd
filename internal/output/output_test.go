package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestClear - Output root reset
// ---------------------------------------------------------------------------

func TestClear(t *testing.T) {
	t.Parallel()

	t.Run("removes stale entries", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "dist")
		if err := os.MkdirAll(filepath.Join(root, "old", "nested"), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("stale"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := Clear(root); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("root has %d entries after Clear, want 0", len(entries))
		}
	})

	t.Run("missing root is created", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "a", "b", "dist")
		if err := Clear(root); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			t.Fatalf("root not created: %v", err)
		}
	})

	t.Run("empty root rejected", func(t *testing.T) {
		t.Parallel()

		if err := Clear(""); !errors.Is(err, ErrEmptyRoot) {
			t.Errorf("Clear(\"\") error = %v, want ErrEmptyRoot", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrune - Generated artifact retention
// ---------------------------------------------------------------------------

// seedGenerated creates n generated entries with increasing modification
// times, alternating files and directories, and returns their names oldest first.
func seedGenerated(t *testing.T, root string, n int) []string {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		// Names sort in reverse of age so the test fails if order falls back to names.
		name := fmt.Sprintf("%s%02d", GeneratedPrefix, n-i)
		path := filepath.Join(root, name)
		if i%2 == 0 {
			if err := os.MkdirAll(filepath.Join(path, "inner"), 0o750); err != nil {
				t.Fatalf("setup: %v", err)
			}
		} else if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		ts := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(path, ts, ts); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		names = append(names, name)
	}
	return names
}

func remaining(t *testing.T, root string) []string {
	t.Helper()

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestPrune(t *testing.T) {
	t.Parallel()

	t.Run("keeps the most recent entries", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		names := seedGenerated(t, root, 5)

		removed, err := Prune(root, 2)
		if err != nil {
			t.Fatalf("Prune() error = %v", err)
		}

		wantRemoved := names[:3]
		if fmt.Sprint(removed) != fmt.Sprint(wantRemoved) {
			t.Errorf("removed = %v, want %v", removed, wantRemoved)
		}

		kept := append([]string(nil), names[3:]...)
		sort.Strings(kept)
		if got := remaining(t, root); fmt.Sprint(got) != fmt.Sprint(kept) {
			t.Errorf("remaining = %v, want %v", got, kept)
		}
	})

	t.Run("non-prefixed entries survive regardless of age", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		seedGenerated(t, root, 3)

		old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		for _, name := range []string{"alpha", "index.html"} {
			path := filepath.Join(root, name)
			if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := os.Chtimes(path, old, old); err != nil {
				t.Fatalf("chtimes: %v", err)
			}
		}

		if _, err := Prune(root, 0); err != nil {
			t.Fatalf("Prune() error = %v", err)
		}

		if got := remaining(t, root); fmt.Sprint(got) != fmt.Sprint([]string{"alpha", "index.html"}) {
			t.Errorf("remaining = %v, want [alpha index.html]", got)
		}
	})

	t.Run("within bound is a no-op", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		seedGenerated(t, root, 2)

		removed, err := Prune(root, 2)
		if err != nil {
			t.Fatalf("Prune() error = %v", err)
		}
		if len(removed) != 0 {
			t.Errorf("removed = %v, want none", removed)
		}
		if got := remaining(t, root); len(got) != 2 {
			t.Errorf("remaining = %v, want 2 entries", got)
		}
	})

	t.Run("negative bound rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := Prune(t.TempDir(), -1); !errors.Is(err, ErrInvalidRetention) {
			t.Errorf("error = %v, want ErrInvalidRetention", err)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		_, err := Prune(filepath.Join(t.TempDir(), "absent"), 1)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist", err)
		}
	})
}
