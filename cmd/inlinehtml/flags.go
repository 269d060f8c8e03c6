package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// behaviorFlags holds the inliner options. Empty strings and false mean
// "not set on the command line".
type behaviorFlags struct {
	matcher           string
	scriptBody        string
	escapeClosingTags bool
	strictPaths       bool
}

// inlineFlags holds all flags for the inline command.
type inlineFlags struct {
	common   commonFlags
	output   string
	workers  int
	behavior behaviorFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addBehaviorFlags adds inliner option flags to a FlagSet.
func addBehaviorFlags(fs *flag.FlagSet, f *behaviorFlags) {
	fs.StringVar(&f.matcher, "matcher", "", "reference matcher: regex, tokenizer")
	fs.StringVar(&f.scriptBody, "script-body", "", "script src with body text: reject, drop")
	fs.BoolVar(&f.escapeClosingTags, "escape-closing-tags", false, "escape </script and </style in inlined content")
	fs.BoolVar(&f.strictPaths, "strict-paths", false, "reject references outside the document directory")
}

// newFlagSet builds the flag set shared by the inline and config commands.
func newFlagSet(name string, f *inlineFlags, usage io.Writer, printUsage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addBehaviorFlags(fs, &f.behavior)

	fs.Usage = func() { printUsage(usage) }
	return fs
}

// parseInlineFlags parses inline command flags and returns positional args.
func parseInlineFlags(args []string, usage io.Writer) (*inlineFlags, []string, error) {
	f := &inlineFlags{}
	fs := newFlagSet("inline", f, usage, printInlineUsage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags. Positional args are rejected.
func parseConfigFlags(args []string, usage io.Writer) (*inlineFlags, error) {
	f := &inlineFlags{}
	fs := newFlagSet("config", f, usage, printConfigUsage)
	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: config takes no arguments, got %q", ErrUsage, fs.Args())
	}
	return f, nil
}

// parseError marks flag parsing failures as usage errors. A help request
// is passed through unchanged.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
