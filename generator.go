package cheatsheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-cheatsheet/internal/fileutil"
	"github.com/alnah/go-cheatsheet/internal/repository"
	"github.com/alnah/go-cheatsheet/internal/templates"
)

// Output file names inside a cheatsheet directory.
const (
	PageFile      = "cheatsheet.html"
	StyleFile     = "style.css"
	HighlightFile = "highlight.css"
	PDFFile       = "cheatsheet.pdf"
)

// generate writes the output directory of one cheatsheet. The directory must
// not exist yet; on failure it is removed again so the output root only holds
// complete cheatsheets.
func (r *run) generate(ctx context.Context, tmpl *templates.Template, src repository.Source, rc *RenderContext) (err error) {
	dir := filepath.Join(r.outputDir, rc.Slug)
	if err := os.Mkdir(dir, fileutil.DirPermissions); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, dir)
		}
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(dir)
		}
	}()

	page, err := r.renderPage(tmpl, rc)
	if err != nil {
		return err
	}
	pagePath := filepath.Join(dir, PageFile)
	if err := fileutil.WriteFile(pagePath, page); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	style, err := tmpl.Style()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateAsset, err)
	}
	if err := fileutil.WriteFile(filepath.Join(dir, StyleFile), style); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if src.HasAssets() {
		if err := fileutil.CopyDir(os.DirFS(src.Assets), ".", filepath.Join(dir, repository.AssetsDir), nil); err != nil {
			return fmt.Errorf("%w: copying assets: %v", ErrWriteOutput, err)
		}
		r.logger.Debug("assets copied", "slug", rc.Slug)
	}

	if hl := tmpl.Manifest.Markdown.Highlight; hl.Classes {
		var css bytes.Buffer
		if err := hl.WriteCSS(&css); err != nil {
			return err
		}
		if err := fileutil.WriteFile(filepath.Join(dir, HighlightFile), css.Bytes()); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	if err := r.copyCommonStyle(); err != nil {
		return err
	}

	if r.pdf != nil {
		if err := r.exportPDF(ctx, pagePath, filepath.Join(dir, PDFFile)); err != nil {
			return err
		}
		r.logger.Debug("pdf exported", "slug", rc.Slug)
	}
	return nil
}

// renderPage executes the template layout, with partials, against rc.
func (r *run) renderPage(tmpl *templates.Template, rc *RenderContext) ([]byte, error) {
	layout, err := tmpl.Layout()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateAsset, err)
	}

	t, err := r.parse(tmpl.Name, layout)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, rc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, tmpl.Name, err)
	}
	return buf.Bytes(), nil
}

// parse parses src together with every partial, in file name order.
func (r *run) parse(name, src string) (*template.Template, error) {
	if r.partials == nil {
		partials, err := r.templates.Partials()
		if err != nil {
			return nil, fmt.Errorf("%w: partials: %v", ErrTemplateAsset, err)
		}
		r.partials = partials
	}

	t, err := template.New(name).Funcs(templateFuncs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}

	names := make([]string, 0, len(r.partials))
	for n := range r.partials {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := t.New(n).Parse(r.partials[n]); err != nil {
			return nil, fmt.Errorf("%w: partial %s: %v", ErrTemplateParse, n, err)
		}
	}
	return t, nil
}

// copyCommonStyle writes the shared stylesheet to the output root once per build.
func (r *run) copyCommonStyle() error {
	if r.commonStyleCopied {
		return nil
	}
	css, err := r.templates.CommonStyle()
	if err != nil {
		if errors.Is(err, templates.ErrCommonStyleNotFound) {
			r.commonStyleCopied = true
			return nil
		}
		return fmt.Errorf("%w: %v", ErrTemplateAsset, err)
	}
	if err := fileutil.WriteFile(filepath.Join(r.outputDir, templates.CommonStyle), css); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	r.commonStyleCopied = true
	return nil
}

// exportPDF prints the written page to a PDF next to it.
func (r *run) exportPDF(ctx context.Context, pagePath, pdfPath string) error {
	abs, err := filepath.Abs(pagePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.pdfTimeout)
	defer cancel()

	data, err := r.pdf.RenderFromFile(ctx, abs)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(pdfPath, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
