// Package markdown wraps goldmark behind a per-cheatsheet engine that is
// configured by named initializers and then frozen on first use.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
)

// Sentinel errors for engine configuration and rendering.
var (
	ErrEngineFrozen = errors.New("markdown engine already used for rendering")
	ErrRender       = errors.New("markdown rendering failed")
)

// Engine accumulates goldmark configuration until its first Render call.
// Each cheatsheet gets its own Engine so no configuration leaks between them.
type Engine struct {
	mu           sync.Mutex
	extensions   []goldmark.Extender
	parserOpts   []parser.Option
	rendererOpts []renderer.Option
	md           goldmark.Markdown
}

// New returns an unconfigured engine. Without further configuration it
// renders plain CommonMark.
func New() *Engine {
	return &Engine{}
}

// Use adds goldmark extensions.
func (e *Engine) Use(exts ...goldmark.Extender) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.md != nil {
		return ErrEngineFrozen
	}
	e.extensions = append(e.extensions, exts...)
	return nil
}

// WithParserOptions adds goldmark parser options.
func (e *Engine) WithParserOptions(opts ...parser.Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.md != nil {
		return ErrEngineFrozen
	}
	e.parserOpts = append(e.parserOpts, opts...)
	return nil
}

// WithRendererOptions adds goldmark renderer options.
func (e *Engine) WithRendererOptions(opts ...renderer.Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.md != nil {
		return ErrEngineFrozen
	}
	e.rendererOpts = append(e.rendererOpts, opts...)
	return nil
}

// markdown builds the goldmark instance on first call and returns it afterwards.
func (e *Engine) markdown() goldmark.Markdown {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.md == nil {
		e.md = goldmark.New(
			goldmark.WithExtensions(e.extensions...),
			goldmark.WithParserOptions(e.parserOpts...),
			goldmark.WithRendererOptions(e.rendererOpts...),
		)
	}
	return e.md
}

// Render converts markdown source to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (e *Engine) Render(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	md := e.markdown()

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
