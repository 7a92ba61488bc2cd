package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds flags that override the site config for build and serve.
type siteFlags struct {
	src        string
	templates  string
	out        string
	failFast   bool
	pdf        bool
	pdfTimeout string
	title      string
	date       string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	changed map[string]bool
}

// pruneFlags holds all flags for the prune command.
type pruneFlags struct {
	common  commonFlags
	out     string
	keep    int
	changed map[string]bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common   commonFlags
	site     siteFlags
	port     int
	debounce string
	changed  map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "site config name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addSiteFlags adds site override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.src, "src", "s", "", "cheatsheets directory")
	fs.StringVarP(&f.templates, "templates", "t", "", "custom templates directory")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (wiped on every build)")
	fs.BoolVar(&f.failFast, "fail-fast", false, "stop at the first failing cheatsheet")
	fs.BoolVar(&f.pdf, "pdf", false, "also export every cheatsheet to PDF")
	fs.StringVar(&f.pdfTimeout, "pdf-timeout", "", "per-page PDF timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.title, "title", "", "index page title")
	fs.StringVar(&f.date, "date", "", "index date: \"auto\", \"auto:FORMAT\", or literal")
}

// parse runs fs over args, records explicitly set flags and rejects
// positional arguments.
func parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	changed := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { changed[f.Name] = true })
	return changed, nil
}

// parseBuildFlags parses build command flags. Usage goes to w.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.Usage = func() { printBuildUsage(w) }

	changed, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	f.changed = changed
	return f, nil
}

// parsePruneFlags parses prune command flags. Usage goes to w.
func parsePruneFlags(args []string, w io.Writer) (*pruneFlags, error) {
	fs := flag.NewFlagSet("prune", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &pruneFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.out, "out", "o", "", "output directory")
	fs.IntVarP(&f.keep, "keep", "k", 0, "number of generated entries to keep")
	fs.Usage = func() { printPruneUsage(w) }

	changed, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	f.changed = changed
	return f, nil
}

// parseServeFlags parses serve command flags. Usage goes to w.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &serveFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.IntVarP(&f.port, "port", "p", 0, "preview server port")
	fs.StringVar(&f.debounce, "debounce", "", "delay before rebuilding after a change (e.g., 300ms)")
	fs.Usage = func() { printServeUsage(w) }

	changed, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	f.changed = changed
	return f, nil
}
