// Package hints provides actionable error hints for common build failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-cheatsheet/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for headless Chrome launch errors during PDF export.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or build without --pdf")

	return formatHints(hints)
}

// ForPDFTimeout returns a hint about raising the PDF timeout.
func ForPDFTimeout() string {
	return format("for long cheatsheets, raise --pdf-timeout")
}

// ForConfigNotFound returns hints for a missing site config.
// Suggests --config or the user config location among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/cheatsheets.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-cheatsheet") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForCheatsheetsDir returns a hint for a missing cheatsheets directory.
func ForCheatsheetsDir() string {
	return format("create one sub-directory per cheatsheet with config.json and index.md, or set --src")
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists available templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available templates: " + strings.Join(available, ", "))
}

// ForInitializerNotFound lists registered markdown initializers.
func ForInitializerNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("set template.yaml initializer to one of: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
