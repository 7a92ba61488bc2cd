package cheatsheet

import "github.com/alnah/go-cheatsheet/internal/output"

// GeneratedPrefix marks output root entries subject to Prune.
const GeneratedPrefix = output.GeneratedPrefix

// Prune keeps the keep most recent generated-prefixed entries of outputDir
// and removes the rest, oldest first. It returns the removed names.
// Other entries are never touched. It is not part of Build.
func Prune(outputDir string, keep int) ([]string, error) {
	return output.Prune(outputDir, keep)
}
