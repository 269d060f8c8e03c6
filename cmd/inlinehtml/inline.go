package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-inlinehtml"
	"github.com/alnah/go-inlinehtml/internal/config"
	"github.com/alnah/go-inlinehtml/internal/fileutil"
	"github.com/alnah/go-inlinehtml/internal/hints"
	"github.com/alnah/go-inlinehtml/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputCollision    = errors.New("several inputs map to the same output")
	ErrOutputIsInput      = errors.New("output would overwrite an input")
	ErrWriteOutput        = errors.New("failed to write output")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// inlineSuffix marks outputs written next to their inputs.
const inlineSuffix = ".inline"

// job is one document to inline. An empty OutputPath means stdout.
type job struct {
	InputPath  string
	OutputPath string
}

// runInline orchestrates the inline command.
func runInline(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseInlineFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, envCfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	jobs, err := planJobs(inputs, flags.output, cfg.Output.Dir)
	if err != nil {
		return err
	}

	// Log lines must not interleave with a document written to stdout.
	var logOut zapcore.WriteSyncer = zapcore.AddSync(env.Stdout)
	if writesStdout(jobs) {
		logOut = zapcore.AddSync(env.Stderr)
	}
	log := cfg.Log.Build(logOut, zapcore.AddSync(env.Stderr))
	defer func() { _ = log.Sync() }()

	for _, w := range envCfg.Warnings {
		log.Warn(w)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = resolvePoolSize(workers)

	log.Debug("resolved settings",
		zap.Int("documents", len(jobs)),
		zap.Int("workers", workers),
		zap.String("matcher", cfg.Inline.Matcher),
		zap.String("scriptBody", cfg.Inline.ScriptBody))

	inliner, err := newInliner(cfg, log)
	if err != nil {
		return err
	}

	results := inlineBatch(ctx, inliner, jobs, workers, env.Stdout)
	return reportResults(log, results)
}

// runConfig prints the merged configuration as YAML.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, envCfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	for _, w := range envCfg.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}

// resolveConfig merges defaults, the config file, environment variables,
// and flags, in increasing order of precedence.
func resolveConfig(flags *inlineFlags) (*config.Config, *envConfig, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, nil, err
	}
	if flags.common.quiet && flags.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	envCfg := loadEnvConfig()

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			err = fmt.Errorf("loading config: %w", err)
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
				err = withHint(err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return nil, nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, withHint(err, invalidValueHint(cfg))
	}
	return cfg, envCfg, nil
}

// invalidValueHint lists the accepted values of the first invalid setting.
func invalidValueHint(cfg *config.Config) string {
	checks := []struct {
		value   string
		allowed []string
	}{
		{cfg.Inline.Matcher, config.Matchers},
		{cfg.Inline.ScriptBody, config.ScriptBodies},
		{cfg.Log.Level, config.LogLevels},
	}
	for _, c := range checks {
		if c.value != "" && !slices.Contains(c.allowed, c.value) {
			return hints.ForInvalidValue(c.allowed)
		}
	}
	return ""
}

// mergeFlags applies flags that were set on the command line.
func mergeFlags(flags *inlineFlags, cfg *config.Config) {
	if flags.behavior.matcher != "" {
		cfg.Inline.Matcher = flags.behavior.matcher
	}
	if flags.behavior.scriptBody != "" {
		cfg.Inline.ScriptBody = flags.behavior.scriptBody
	}
	if flags.behavior.escapeClosingTags {
		cfg.Inline.EscapeClosingTags = true
	}
	if flags.behavior.strictPaths {
		cfg.Inline.StrictPaths = true
	}
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.common.quiet {
		cfg.Log.Level = "none"
	}
}

// newInliner translates the inline section of cfg into inliner options.
func newInliner(cfg *config.Config, log *zap.Logger) (*inlinehtml.Inliner, error) {
	matcher, err := inlinehtml.ParseMatcherKind(cfg.Inline.Matcher)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	scriptBody, err := inlinehtml.ParseScriptBodyPolicy(cfg.Inline.ScriptBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	opts := []inlinehtml.Option{
		inlinehtml.WithLogger(log),
		inlinehtml.WithMatcher(matcher),
		inlinehtml.WithScriptBody(scriptBody),
	}
	if cfg.Inline.EscapeClosingTags {
		opts = append(opts, inlinehtml.WithEscapeClosingTags())
	}
	if cfg.Inline.StrictPaths {
		opts = append(opts, inlinehtml.WithStrictPaths())
	}
	return inlinehtml.New(opts...), nil
}

// source is one input document and the directory its output path is
// relative to. Explicit file arguments have an empty root.
type source struct {
	path string
	root string
}

// planJobs expands directory inputs and assigns an output path to every
// document. It fails before any work when two documents would be written
// to the same file or when an output would overwrite an input.
func planJobs(inputs []string, output, outputDir string) ([]job, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var sources []source
	for _, in := range inputs {
		if !fileutil.DirExists(in) {
			sources = append(sources, source{path: in})
			continue
		}
		found, err := discoverFiles(in)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w: no HTML files found in %s", ErrNoInput, in)
		}
		sources = append(sources, found...)
	}

	single := len(sources) == 1 && sources[0].root == ""

	targetDir := outputDir
	if output != "" {
		targetDir = ""
		if !single || isDirTarget(output) {
			targetDir = output
		}
	}

	jobs := make([]job, 0, len(sources))
	for _, src := range sources {
		j := job{InputPath: src.path}
		switch {
		case targetDir != "":
			j.OutputPath = filepath.Join(targetDir, relativeName(src))
		case output != "":
			j.OutputPath = output
		case single:
			// stdout
		default:
			j.OutputPath = fileutil.WithSuffix(src.path, inlineSuffix)
		}
		jobs = append(jobs, j)
	}

	if err := checkOutputs(jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// discoverFiles finds .html and .htm files under dir, skipping previous
// outputs named <name>.inline.<ext>.
func discoverFiles(dir string) ([]source, error) {
	var found []source
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isHTML(path) {
			return nil
		}
		ext := filepath.Ext(path)
		if strings.HasSuffix(strings.TrimSuffix(path, ext), inlineSuffix) {
			return nil
		}
		found = append(found, source{path: path, root: dir})
		return nil
	})
	return found, err
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// isDirTarget reports whether output names a directory: an existing one,
// or a path ending in a separator.
func isDirTarget(output string) bool {
	return fileutil.DirExists(output) ||
		strings.HasSuffix(output, "/") ||
		strings.HasSuffix(output, string(filepath.Separator))
}

// relativeName is the output name of src inside a target directory.
func relativeName(src source) string {
	if src.root != "" {
		if rel, err := filepath.Rel(src.root, src.path); err == nil {
			return rel
		}
	}
	return filepath.Base(src.path)
}

func checkOutputs(jobs []job) error {
	inputs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		inputs[absPath(j.InputPath)] = j.InputPath
	}

	outputs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		if j.OutputPath == "" {
			continue
		}
		key := absPath(j.OutputPath)
		if in, ok := inputs[key]; ok {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, in)
		}
		if prev, ok := outputs[key]; ok {
			return fmt.Errorf("%w: %s and %s -> %s", ErrOutputCollision, prev, j.InputPath, j.OutputPath)
		}
		outputs[key] = j.InputPath
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func writesStdout(jobs []job) bool {
	for _, j := range jobs {
		if j.OutputPath == "" {
			return true
		}
	}
	return false
}

// writeOutput writes an inlined document atomically, creating parent
// directories as needed.
func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
