// Package templates loads cheatsheet presentation templates.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled in with go:embed
//	    ├── FilesystemLoader  - templates directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the build. It tries the FilesystemLoader
// first and falls back to the EmbeddedLoader when a template, the main area,
// or the shared stylesheet is not found there. This lets a templates
// directory override one built-in template and keep the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── common.css                  # shared stylesheet copied to the output root
//	├── partials/
//	│   └── {name}.tmpl             # parsed into every layout
//	├── main/
//	│   ├── index.html.tmpl         # rendered to {out}/index.html
//	│   └── ...                     # copied verbatim
//	└── {template}/
//	    ├── cheatsheet.html.tmpl    # page layout
//	    ├── style.css               # copied next to each page
//	    └── template.yaml           # default params and markdown settings
//
// # Layout Data
//
// Layouts execute in html/template contexts. Colors from a cheatsheet config
// reach layouts as template.CSS, so hex values, color names and functional
// notations such as rgb(), hsl() or var() render unchanged. A color containing
// any of ;{}<>"\ or a backtick fails the build of its cheatsheet.
//
// The assetURL function resolves a page-relative reference for the index page:
// {{assetURL .Slug .Icon}} prefixes relative paths with the slug and leaves
// absolute URLs and root-relative paths alone.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package templates
