package inlinehtml

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"go.uber.org/zap"

	"github.com/alnah/go-inlinehtml/internal/assets"
	"github.com/alnah/go-inlinehtml/internal/markup"
	"github.com/alnah/go-inlinehtml/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ markup.Matcher = (*markup.RegexMatcher)(nil)
	_ markup.Matcher = (*markup.TokenizerMatcher)(nil)
	_ assets.Loader  = (*assets.FilesystemLoader)(nil)
	_ assets.Loader  = (*assets.FSLoader)(nil)
	_ assets.Loader  = (*assets.ResourceLoader)(nil)
)

// passes lists the matching passes in execution order. Scripts are matched
// on the text produced by the style pass.
var passes = []markup.Kind{markup.KindStyle, markup.KindScript}

// Inliner holds the options of inlining calls. It keeps no state between
// calls and is safe for concurrent use.
type Inliner struct {
	log               *zap.Logger
	matcherKind       MatcherKind
	scriptBody        ScriptBodyPolicy
	escapeClosingTags bool
	strictPaths       bool
}

// New creates an Inliner with default configuration: regex matcher,
// script bodies rejected, no escaping, no logging.
func New(opts ...Option) *Inliner {
	in := &Inliner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// InlineFile inlines the document at path using a fresh Inliner.
func InlineFile(path string, opts ...Option) (string, error) {
	return New(opts...).InlineFile(path)
}

// InlineFS inlines the document name inside fsys using a fresh Inliner.
func InlineFS(fsys fs.FS, name string, opts ...Option) (string, error) {
	return New(opts...).InlineFS(fsys, name)
}

// InlineResource inlines resource id using a fresh Inliner.
func InlineResource(id ResourceID, table ResourceTable, store ResourceStore, opts ...Option) (string, error) {
	return New(opts...).InlineResource(id, table, store)
}

// InlineFile reads the document at path and inlines every reference,
// resolved relative to the directory of path.
func (in *Inliner) InlineFile(path string) (string, error) {
	root, err := assets.NewFilesystemLoader("").Load(path)
	if err != nil {
		return "", &InlineError{Op: "load", Element: ElementDocument, Name: path, Err: err}
	}

	baseDir := assets.DirOf(path)
	var loader assets.Loader = assets.NewFilesystemLoader(baseDir)
	if in.strictPaths {
		strict, err := assets.NewStrictFilesystemLoader(baseDir)
		if err != nil {
			return "", &InlineError{Op: "load", Element: ElementDocument, Name: path, Err: err}
		}
		loader = strict
	}

	return in.run(string(root), path, loader)
}

// InlineFS reads the document name from fsys and inlines every reference,
// resolved relative to the directory of name inside fsys.
func (in *Inliner) InlineFS(fsys fs.FS, name string) (string, error) {
	root, err := assets.NewFSLoader(fsys, "").Load(name)
	if err != nil {
		return "", &InlineError{Op: "load", Element: ElementDocument, Name: name, Err: err}
	}

	return in.run(string(root), name, assets.NewFSLoader(fsys, assets.DirOf(name)))
}

// InlineResource fetches the root document id as TypeHTML from store and
// inlines every reference, looked up in table and fetched as TypeRCData.
func (in *Inliner) InlineResource(id ResourceID, table ResourceTable, store ResourceStore) (string, error) {
	name := strconv.Itoa(int(id))

	if store == nil {
		return "", &InlineError{Op: "load", Element: ElementDocument, Name: name,
			Err: fmt.Errorf("%w: nil resource store", ErrPlatformResource)}
	}

	root, err := store.Fetch(id, TypeHTML)
	if err != nil {
		if !errors.Is(err, ErrPlatformResource) {
			err = fmt.Errorf("%w: %w", ErrPlatformResource, err)
		}
		return "", &InlineError{Op: "load", Element: ElementDocument, Name: name, Err: err}
	}

	return in.run(string(root), name, assets.NewResourceLoader(table, store))
}

// run executes the style pass, the script pass, and normalization.
// Each pass matches against the output of the previous one.
func (in *Inliner) run(doc, name string, loader assets.Loader) (string, error) {
	log := in.log.With(zap.String("document", name))
	matcher := in.matcher()
	opts := in.substituteOptions(log)

	for _, kind := range passes {
		matches := matcher.Match(doc, kind)
		log.Debug("matched references", zap.Stringer("kind", kind), zap.Int("count", len(matches)))

		var err error
		doc, err = pipeline.Substitute(doc, matches, loader, opts)
		if err != nil {
			return "", toInlineError(err)
		}
	}

	return pipeline.NormalizeLineEndings(doc), nil
}

func (in *Inliner) matcher() markup.Matcher {
	if in.matcherKind == MatcherTokenizer {
		return markup.NewTokenizerMatcher()
	}
	return markup.NewRegexMatcher()
}

func (in *Inliner) substituteOptions(log *zap.Logger) pipeline.SubstituteOptions {
	return pipeline.SubstituteOptions{
		ScriptBody:        in.scriptBody,
		EscapeClosingTags: in.escapeClosingTags,
		OnInline: func(m markup.Match, size int) {
			log.Debug("inlined reference",
				zap.Stringer("kind", m.Kind),
				zap.String("file", m.Filename),
				zap.Int("bytes", size))
		},
		OnDroppedBody: func(m markup.Match) {
			log.Warn("dropped script body",
				zap.String("file", m.Filename),
				zap.Int("bytes", len(m.Body)))
		},
	}
}

// toInlineError carries the element kind and filename of a failed
// substitution into the public error type.
func toInlineError(err error) error {
	var subErr *pipeline.SubstituteError
	if errors.As(err, &subErr) {
		return &InlineError{Op: "inline", Element: subErr.Kind.String(), Name: subErr.Filename, Err: subErr.Err}
	}
	return &InlineError{Op: "inline", Element: ElementDocument, Err: err}
}
