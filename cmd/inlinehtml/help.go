package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: inlinehtml <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inline     Inline stylesheets and scripts into HTML documents")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'inlinehtml help <command>' for details on a specific command.")
}

// printInlineUsage prints usage for the inline command.
func printInlineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: inlinehtml inline [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace <link rel=\"stylesheet\"> and <script src> elements with the")
	fmt.Fprintln(w, "contents of the files they reference.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file, or directory searched for .html and .htm files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file (one input) or directory")
	fmt.Fprintln(w, "                              Without it, one file goes to stdout and")
	fmt.Fprintln(w, "                              several are written as <name>.inline.html")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inlining:")
	fmt.Fprintln(w, "      --matcher <s>           Reference matcher: regex, tokenizer")
	fmt.Fprintln(w, "      --script-body <s>       <script src> with body text: reject, drop")
	fmt.Fprintln(w, "      --escape-closing-tags   Escape </script and </style in inlined content")
	fmt.Fprintln(w, "      --strict-paths          Reject references outside the document directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  INLINEHTML_CONFIG, INLINEHTML_OUTPUT_DIR, INLINEHTML_MATCHER,")
	fmt.Fprintln(w, "  INLINEHTML_SCRIPT_BODY, INLINEHTML_WORKERS, INLINEHTML_LOG_LEVEL")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: inlinehtml config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration that 'inline' would use with the same flags,")
	fmt.Fprintln(w, "after merging the config file, environment, and flags.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "inline":
		printInlineUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: inlinehtml version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: inlinehtml help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
