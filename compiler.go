package cheatsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-cheatsheet/internal/repository"
)

// compile turns one cheatsheet source into a rendering context and writes its
// page. Nothing is written for the cheatsheet until its config, template,
// engine and markdown have all been resolved.
func (r *run) compile(ctx context.Context, slug string) (*RenderContext, error) {
	src := repository.NewSource(r.cheatsheetsDir, slug)

	cfg, err := ReadConfig(src.Config)
	if err != nil {
		return nil, err
	}

	tmpl, err := r.factory.template(cfg.Template)
	if err != nil {
		return nil, err
	}

	engine, err := r.factory.Create(cfg.Template)
	if err != nil {
		return nil, err
	}

	md, err := os.ReadFile(src.Markdown) // #nosec G304 -- path built from listed slug
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	content, err := engine.Render(ctx, string(md))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderMarkdown, err)
	}
	r.logger.Debug("markdown rendered", "slug", slug, "bytes", len(content))

	mainColor, err := cssValue(cfg.MainColor)
	if err != nil {
		return nil, fmt.Errorf("mainColor: %w", err)
	}
	secondaryColor, err := cssValue(cfg.SecondaryColor)
	if err != nil {
		return nil, fmt.Errorf("secondaryColor: %w", err)
	}

	title := cfg.Name
	if title == "" {
		title = titleCase(slug)
	}

	rc := &RenderContext{
		Slug:           slug,
		Title:          title,
		Description:    cfg.Description,
		MainColor:      mainColor,
		SecondaryColor: secondaryColor,
		Icon:           cfg.Icon,
		Template:       cfg.Template,
		Content:        template.HTML(content), // #nosec G203 -- goldmark output, raw HTML only when the template opts in
		Params:         MergeParams(tmpl.Defaults(), cfg.TemplateParams),
	}

	if err := r.generate(ctx, tmpl, src, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

// ReadConfig reads and parses a cheatsheet config.json.
// Returns ErrReadConfig, ErrConfigParse or ErrMissingTemplate.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-resolved path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if cfg.Template == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, path)
	}
	return &cfg, nil
}

// MergeParams returns defaults overlaid with overrides. Keys present in both
// take the override value; nested maps are replaced, not merged. Neither
// input is modified.
func MergeParams(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// cssUnsafeChars could end a declaration, a rule or the enclosing attribute.
const cssUnsafeChars = ";{}<>\"\\`"

// cssValue marks a config color as trusted CSS so any notation (hex, names,
// rgb(), hsl(), var()) reaches the layout unchanged. Values that could escape
// the property they are written into are rejected with ErrInvalidColor.
func cssValue(s string) (template.CSS, error) {
	if strings.ContainsAny(s, cssUnsafeChars) || strings.Contains(s, "/*") {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return template.CSS(s), nil // #nosec G203 -- checked above
}
