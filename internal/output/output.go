// Package output manages the lifecycle of the build output root: wiping it
// before a build and bounding the set of generated artifacts kept in it.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-cheatsheet/internal/fileutil"
)

// GeneratedPrefix marks output root entries subject to retention pruning.
const GeneratedPrefix = "generated-"

// Sentinel errors for output lifecycle operations.
var (
	ErrEmptyRoot        = errors.New("output root cannot be empty")
	ErrInvalidRetention = errors.New("retention count must be zero or positive")
)

// Clear deletes root recursively if present and recreates it empty.
// A missing root is not an error.
func Clear(root string) error {
	if root == "" {
		return ErrEmptyRoot
	}
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("removing output root %s: %w", root, err)
	}
	if err := os.MkdirAll(root, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating output root %s: %w", root, err)
	}
	return nil
}

// artifact is a generated entry with its creation time proxy.
type artifact struct {
	name    string
	created time.Time
}

// Prune removes the oldest generated-prefixed entries of root until at most
// maxKept remain, and returns the names it removed in eviction order.
// Entries without the prefix are never touched.
//
// Portable Go exposes no file birth time, so modification time stands in for
// creation time; equal times fall back to name order.
func Prune(root string, maxKept int) ([]string, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if maxKept < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRetention, maxKept)
	}

	artifacts, err := listGenerated(root)
	if err != nil {
		return nil, err
	}
	if len(artifacts) <= maxKept {
		return nil, nil
	}

	sort.SliceStable(artifacts, func(i, j int) bool {
		if artifacts[i].created.Equal(artifacts[j].created) {
			return artifacts[i].name < artifacts[j].name
		}
		return artifacts[i].created.Before(artifacts[j].created)
	})

	var removed []string
	for len(artifacts) > maxKept {
		oldest := artifacts[0]
		if err := os.RemoveAll(filepath.Join(root, oldest.name)); err != nil {
			return removed, fmt.Errorf("removing %s: %w", oldest.name, err)
		}
		removed = append(removed, oldest.name)
		artifacts = artifacts[1:]
	}
	return removed, nil
}

// listGenerated returns root entries carrying GeneratedPrefix.
func listGenerated(root string) ([]artifact, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing output root %s: %w", root, err)
	}

	var out []artifact
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), GeneratedPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		out = append(out, artifact{name: e.Name(), created: info.ModTime()})
	}
	return out, nil
}
