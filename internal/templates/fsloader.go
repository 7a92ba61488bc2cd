package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// fsLoader implements Loader over any fs.FS laid out as described in the
// package documentation.
type fsLoader struct {
	fsys fs.FS
}

func (l *fsLoader) Template(name string) (*Template, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	dir, err := fs.Sub(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	manifest, err := loadManifest(dir, name)
	if err != nil {
		return nil, err
	}
	return &Template{Name: name, Manifest: manifest, fsys: dir}, nil
}

func (l *fsLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() || isReserved(e.Name()) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (l *fsLoader) Main() (fs.FS, error) {
	info, err := fs.Stat(l.fsys, MainDir)
	if err != nil || !info.IsDir() {
		return nil, ErrMainNotFound
	}
	return fs.Sub(l.fsys, MainDir)
}

func (l *fsLoader) Partials() (map[string]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(PartialsDir, "*"+TemplateSuffix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	partials := make(map[string]string, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(l.fsys, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRead, m, err)
		}
		partials[path.Base(m)] = string(data)
	}
	return partials, nil
}

func (l *fsLoader) CommonStyle() ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, CommonStyle)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrCommonStyleNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return data, nil
}
