package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cheatsheet <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the static cheatsheet site")
	fmt.Fprintln(w, "  serve      Build, preview over HTTP and rebuild on changes")
	fmt.Fprintln(w, "  prune      Remove old generated-* entries from the output directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cheatsheet help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Site config name or path (default: cheatsheets.yaml if present)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

func printSiteUsage(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -s, --src <dir>           Cheatsheets directory (default: cheatsheets)")
	fmt.Fprintln(w, "  -t, --templates <dir>     Custom templates directory, overriding built-ins")
	fmt.Fprintln(w, "  -o, --out <dir>           Output directory, wiped on every build (default: dist)")
	fmt.Fprintln(w, "      --fail-fast           Stop at the first failing cheatsheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Index:")
	fmt.Fprintln(w, "      --title <s>           Index page title")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also export every cheatsheet to cheatsheet.pdf")
	fmt.Fprintln(w, "      --pdf-timeout <d>     Per-page timeout (default: 30s)")
	fmt.Fprintln(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cheatsheet build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one page per cheatsheet directory plus the index.")
	fmt.Fprintln(w)
	printSiteUsage(w)
	printCommonUsage(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cheatsheet serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, serve it on 127.0.0.1 and rebuild when sources change.")
	fmt.Fprintln(w)
	printSiteUsage(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -p, --port <n>            Listen port (default: 8080)")
	fmt.Fprintln(w, "      --debounce <d>        Delay before rebuilding (default: 300ms)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPruneUsage prints usage for the prune command.
func printPruneUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cheatsheet prune [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keep the newest generated-* entries of the output directory, remove the rest.")
	fmt.Fprintln(w, "Age is the entry's modification time: rewriting an old entry makes it count as")
	fmt.Fprintln(w, "new, so it can survive a prune that removes younger entries.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Retention:")
	fmt.Fprintln(w, "  -o, --out <dir>           Output directory (default: dist)")
	fmt.Fprintln(w, "  -k, --keep <n>            Entries to keep (default: 5)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "prune":
		printPruneUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cheatsheet version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cheatsheet help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
