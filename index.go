package cheatsheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cheatsheet/internal/dateutil"
	"github.com/alnah/go-cheatsheet/internal/fileutil"
	"github.com/alnah/go-cheatsheet/internal/templates"
)

// buildIndex renders the main area into the output root: every *.tmpl file
// is executed against the index payload and written without its suffix, other
// files are copied as is. It returns the template names listed on the index.
func (r *run) buildIndex(ctx context.Context, contexts []*RenderContext) ([]string, error) {
	names, err := r.templates.Names()
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	generated, err := dateutil.Resolve(r.indexDate, r.now())
	if err != nil {
		return nil, err
	}

	page := &IndexPage{
		Title:       r.indexTitle,
		Generated:   generated,
		Cheatsheets: contexts,
		Templates:   names,
	}
	if page.Cheatsheets == nil {
		page.Cheatsheets = []*RenderContext{}
	}

	mainFS, err := r.templates.Main()
	if err != nil {
		if errors.Is(err, templates.ErrMainNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrMainTemplateMissing, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateAsset, err)
	}

	err = fs.WalkDir(mainFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		dst := filepath.Join(r.outputDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, fileutil.DirPermissions)
		}
		if !strings.HasSuffix(p, templates.TemplateSuffix) {
			return fileutil.CopyFile(mainFS, p, dst)
		}
		return r.renderIndexFile(mainFS, p, strings.TrimSuffix(dst, templates.TemplateSuffix), page)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("building index: %w", err)
	}

	// Keep the shared stylesheet even when no cheatsheet was built.
	if err := r.copyCommonStyle(); err != nil {
		return nil, err
	}

	r.logger.Debug("index built", "cheatsheets", len(contexts), "templates", len(names))
	return names, nil
}

func (r *run) renderIndexFile(mainFS fs.FS, name, dst string, page *IndexPage) error {
	src, err := fs.ReadFile(mainFS, name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateAsset, err)
	}

	t, err := r.parse(name, string(src))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, page); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	if err := fileutil.WriteFile(dst, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
