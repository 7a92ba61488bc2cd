package main

// Notes:
// - runMain: we test dispatch and exit codes for every command with real
//   builds against temp directories. PDF export is not exercised here
//   (needs Chrome; see the integration tests of the root package).
// - Tests that read the environment use t.Setenv and cannot run in parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newSource creates a cheatsheets directory with one sheet per template name.
func newSource(t *testing.T, sheets map[string]string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "cheatsheets")
	for slug, tmpl := range sheets {
		writeTestFile(t, filepath.Join(src, slug, "config.json"), `{"template": "`+tmpl+`"}`)
		writeTestFile(t, filepath.Join(src, slug, "index.md"), "# "+slug+"\n")
	}
	return src
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"cheatsheet"}, ExitUsage, "", "Usage: cheatsheet"},
		{"version", []string{"cheatsheet", "version"}, ExitSuccess, "cheatsheet dev", ""},
		{"help", []string{"cheatsheet", "help"}, ExitSuccess, "Commands:", ""},
		{"help build", []string{"cheatsheet", "help", "build"}, ExitSuccess, "--pdf-timeout", ""},
		{"help serve", []string{"cheatsheet", "help", "serve"}, ExitSuccess, "--debounce", ""},
		{"help prune", []string{"cheatsheet", "help", "prune"}, ExitSuccess, "--keep", ""},
		{"help prune age", []string{"cheatsheet", "help", "prune"}, ExitSuccess, "rewriting an old entry makes it count as", ""},
		{"unknown command", []string{"cheatsheet", "deploy"}, ExitUsage, "", "unknown command: deploy"},
		{"bad flag", []string{"cheatsheet", "build", "--nope"}, ExitUsage, "", "invalid usage"},
		{"build help flag", []string{"cheatsheet", "build", "-h"}, ExitSuccess, "", "Usage: cheatsheet build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	src := newSource(t, map[string]string{"alpha": "basic", "beta": "compact"})
	out := filepath.Join(t.TempDir(), "dist")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "build", "--src", src, "--out", out, "--title", "Mine"}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	for _, rel := range []string{"index.html", "alpha/cheatsheet.html", "beta/cheatsheet.html", "common.css"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	index, _ := os.ReadFile(filepath.Join(out, "index.html"))
	if !strings.Contains(string(index), "Mine") {
		t.Error("index does not carry the --title value")
	}
	if !strings.Contains(stdout.String(), "2 built into") {
		t.Errorf("summary missing:\n%s", stdout.String())
	}
}

func TestRunMain_BuildFailureIsolated(t *testing.T) {
	t.Parallel()

	src := newSource(t, map[string]string{"good": "basic", "bad": "nonexistent"})
	out := filepath.Join(t.TempDir(), "dist")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "build", "-s", src, "-o", out}, env)

	if code != ExitGeneral {
		t.Fatalf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stdout.String(), "FAIL  bad") || !strings.Contains(stdout.String(), "1 built, 1 failed") {
		t.Errorf("summary:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "available templates: basic, compact") {
		t.Errorf("missing template hint:\n%s", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "good", "cheatsheet.html")); err != nil {
		t.Errorf("good cheatsheet not built: %v", err)
	}
}

func TestRunMain_BuildQuiet(t *testing.T) {
	t.Parallel()

	src := newSource(t, map[string]string{"alpha": "basic"})
	out := filepath.Join(t.TempDir(), "dist")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "build", "-q", "-s", src, "-o", out}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("quiet build wrote output: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestRunMain_BuildMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, _, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "build", "-s", filepath.Join(dir, "none"), "-o", filepath.Join(dir, "dist")}, env)

	if code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("missing hint:\n%s", stderr.String())
	}
}

func TestRunMain_BuildOverlappingOutput(t *testing.T) {
	t.Parallel()

	src := newSource(t, map[string]string{"alpha": "basic"})
	env, _, _ := testEnv()
	code := runMain([]string{"cheatsheet", "build", "-s", src, "-o", filepath.Join(src, "out")}, env)

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	src := newSource(t, map[string]string{"alpha": "basic"})
	out := filepath.Join(t.TempDir(), "dist")
	cfgPath := filepath.Join(t.TempDir(), "site.yaml")
	writeTestFile(t, cfgPath, "cheatsheetsDir: "+src+"\noutputDir: "+out+"\nindex:\n  title: From File\n  date: \"2024\"\n")

	env, _, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "build", "--config", cfgPath}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "From File") || !strings.Contains(string(index), "2024") {
		t.Errorf("index does not reflect the config file:\n%s", index)
	}
}

func TestRunMain_ConfigErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	writeTestFile(t, badYAML, "outputDir: [unclosed\n")
	unknownKey := filepath.Join(dir, "unknown.yaml")
	writeTestFile(t, unknownKey, "outptDir: dist\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", badYAML},
		{"unknown key", unknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv()
			if code := runMain([]string{"cheatsheet", "build", "-c", tt.path}, env); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
		})
	}
}

func TestRunMain_EnvOverridesConfig(t *testing.T) {
	src := newSource(t, map[string]string{"alpha": "basic"})
	out := filepath.Join(t.TempDir(), "dist")
	t.Setenv("CHEATSHEET_SRC", src)
	t.Setenv("CHEATSHEET_OUT", out)
	t.Setenv("CHEATSHEET_TITLE", "From Env")

	env, _, stderr := testEnv()
	if code := runMain([]string{"cheatsheet", "build"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "From Env") {
		t.Error("index does not carry CHEATSHEET_TITLE")
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Prune - Retention command
// ---------------------------------------------------------------------------

func TestRunMain_Prune(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		path := filepath.Join(out, "generated-"+string(rune('a'+i)))
		writeTestFile(t, path, "x")
		ts := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(path, ts, ts); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}
	writeTestFile(t, filepath.Join(out, "index.html"), "keep")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"cheatsheet", "prune", "-o", out, "--keep", "1"}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	entries, _ := os.ReadDir(out)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if strings.Join(names, ",") != "generated-d,index.html" {
		t.Errorf("remaining = %v, want [generated-d index.html]", names)
	}
	if !strings.Contains(stdout.String(), "3 removed") {
		t.Errorf("summary:\n%s", stdout.String())
	}
}

func TestRunMain_PruneInvalidKeep(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if code := runMain([]string{"cheatsheet", "prune", "-o", t.TempDir(), "--keep", "-1"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}
