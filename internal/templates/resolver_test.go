package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver(filepath.Join(t.TempDir(), "absent"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_Fallback(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTemplate(t, base, "basic", map[string]string{
		LayoutFile:   "custom basic",
		ManifestFile: "initializer: plain\n",
	})
	writeTemplate(t, base, "dark", map[string]string{LayoutFile: "dark"})
	writeTemplate(t, base, PartialsDir, map[string]string{"head.tmpl": `{{define "head"}}custom{{end}}`})
	if err := os.WriteFile(filepath.Join(base, CommonStyle), []byte("custom-common"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	r, err := NewResolver(base)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		tmpl, err := r.Template("basic")
		if err != nil {
			t.Fatalf("Template() error = %v", err)
		}
		layout, _ := tmpl.Layout()
		if layout != "custom basic" {
			t.Errorf("Layout() = %q, want custom basic", layout)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		tmpl, err := r.Template("compact")
		if err != nil {
			t.Fatalf("Template() error = %v", err)
		}
		if tmpl.InitializerName() != "extended" {
			t.Errorf("InitializerName() = %q, want extended", tmpl.InitializerName())
		}
	})

	t.Run("unknown everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := r.Template("nonexistent")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("Template() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("names are merged", func(t *testing.T) {
		t.Parallel()

		names, err := r.Names()
		if err != nil {
			t.Fatalf("Names() error = %v", err)
		}
		if got := strings.Join(names, ","); got != "basic,compact,dark" {
			t.Errorf("Names() = %v, want [basic compact dark]", names)
		}
	})

	t.Run("partials overlay", func(t *testing.T) {
		t.Parallel()

		partials, err := r.Partials()
		if err != nil {
			t.Fatalf("Partials() error = %v", err)
		}
		if !strings.Contains(partials["head.tmpl"], "custom") {
			t.Errorf("head.tmpl = %q, want custom override", partials["head.tmpl"])
		}
		if _, ok := partials["footer.tmpl"]; !ok {
			t.Error("embedded footer.tmpl lost in overlay")
		}
	})

	t.Run("common style from custom", func(t *testing.T) {
		t.Parallel()

		css, err := r.CommonStyle()
		if err != nil {
			t.Fatalf("CommonStyle() error = %v", err)
		}
		if string(css) != "custom-common" {
			t.Errorf("CommonStyle() = %q, want custom-common", css)
		}
	})

	t.Run("main falls back", func(t *testing.T) {
		t.Parallel()

		mainFS, err := r.Main()
		if err != nil {
			t.Fatalf("Main() error = %v", err)
		}
		if _, err := fs.Stat(mainFS, "index.html.tmpl"); err != nil {
			t.Errorf("embedded main not used: %v", err)
		}
	})
}

func TestResolver_NoFallbackOnValidationError(t *testing.T) {
	t.Parallel()

	r, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	_, err = r.Template("../basic")
	if !errors.Is(err, ErrInvalidTemplateName) {
		t.Errorf("Template() error = %v, want ErrInvalidTemplateName", err)
	}
}

func TestResolver_NoFallbackOnManifestError(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTemplate(t, base, "basic", map[string]string{ManifestFile: "unknownKey: 1\n"})

	r, _ := NewResolver(base)
	_, err := r.Template("basic")
	if !errors.Is(err, ErrManifest) {
		t.Errorf("Template() error = %v, want ErrManifest", err)
	}
}
