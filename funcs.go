package cheatsheet

import (
	"html/template"
	"net/url"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFuncs are available to every layout, partial and main template.
var templateFuncs = template.FuncMap{
	"param":    param,
	"title":    titleCase,
	"upper":    strings.ToUpper,
	"lower":    strings.ToLower,
	"join":     strings.Join,
	"default":  defaultValue,
	"assetURL": assetURL,
}

func param(params map[string]any, key string) any {
	if v, ok := params[key]; ok {
		return v
	}
	return ""
}

// titleCase title-cases s, treating hyphens and underscores as spaces.
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

// defaultValue returns fallback when v is nil or the zero value of its type.
func defaultValue(fallback, v any) any {
	if v == nil {
		return fallback
	}
	if rv := reflect.ValueOf(v); rv.IsZero() {
		return fallback
	}
	return v
}

// assetURL resolves ref, relative to a cheatsheet page, for a page in the
// output root. Absolute URLs and root-relative paths are returned unchanged.
func assetURL(slug, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "/") {
		return ref
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	return slug + "/" + ref
}
