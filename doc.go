// Package cheatsheet builds a static site of cheatsheets from markdown.
//
// # Quick Start
//
// Point a Builder at a cheatsheets directory and an output root:
//
//	b, err := cheatsheet.NewBuilder(
//	    cheatsheet.WithCheatsheetsDir("cheatsheets"),
//	    cheatsheet.WithOutputDir("dist"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Cheatsheets), "cheatsheets built")
//
// # Sources
//
// Each sub-directory of the cheatsheets directory is one cheatsheet, named
// by its slug (the directory name):
//
//	cheatsheets/
//	└── git/
//	    ├── config.json   # template, name, description, colors, icon, templateParams
//	    ├── index.md      # content
//	    └── assets/       # optional, copied next to the page
//
// # Build Pipeline
//
// Build runs these stages:
//
//  1. The output root is deleted and recreated empty.
//  2. Cheatsheet slugs are listed, in directory order.
//  3. Each cheatsheet is compiled: config.json is parsed, the named template
//     is resolved, a fresh markdown engine is configured by the template's
//     initializer, index.md is rendered, template params are merged with the
//     config's templateParams (config wins) and the page is written to
//     <out>/<slug>/.
//  4. The index is rendered from the main template area over every
//     successfully compiled cheatsheet.
//
// A cheatsheet that fails is reported in BuildResult.Failures and the others
// are still built; use WithFailFast to stop at the first failure.
//
// # Templates
//
// The built-in templates are "basic" and "compact". WithTemplatesDir adds a
// directory whose templates, partials, main area and common.css take
// precedence over the built-in ones. A template selects its markdown
// initializer by name; register custom ones with RegisterInitializer or
// WithInitializer.
//
// # Maintenance
//
// Prune bounds the number of "generated-" entries kept in the output root.
// It never runs as part of Build.
package cheatsheet
