package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-inlinehtml/internal/assets"
	"github.com/alnah/go-inlinehtml/internal/markup"
)

// ErrScriptBody indicates a <script src> element carries inline body text.
var ErrScriptBody = errors.New("script with src has a non-empty body")

// ScriptBodyPolicy decides how a non-empty body of a <script src> element is handled.
type ScriptBodyPolicy int

const (
	// ScriptBodyReject fails the substitution with ErrScriptBody.
	ScriptBodyReject ScriptBodyPolicy = iota
	// ScriptBodyDrop discards the body, as browsers ignore it when src is set.
	ScriptBodyDrop
)

// SubstituteOptions tunes a substitution pass. The zero value rejects script
// bodies and inlines content verbatim.
type SubstituteOptions struct {
	ScriptBody        ScriptBodyPolicy
	EscapeClosingTags bool

	// OnInline is called after each element is resolved, with the content size.
	OnInline func(m markup.Match, size int)
	// OnDroppedBody is called when ScriptBodyDrop discards a body.
	OnDroppedBody func(m markup.Match)
}

// SubstituteError reports which element a substitution failed on.
type SubstituteError struct {
	Kind     markup.Kind
	Filename string
	Err      error
}

func (e *SubstituteError) Error() string {
	return fmt.Sprintf("inlining %s %q: %v", e.Kind, e.Filename, e.Err)
}

func (e *SubstituteError) Unwrap() error { return e.Err }

// closingTag matches sequences that would terminate a wrapper element early.
var closingTag = regexp.MustCompile(`(?i)</(script|style)`)

// Substitute replaces every match with its inlined wrapper element.
// matches must come from one scan of doc, in ascending Start order.
// The first failure aborts the pass and no partial document is returned.
func Substitute(doc string, matches []markup.Match, loader assets.Loader, opts SubstituteOptions) (string, error) {
	if err := checkSpans(doc, matches); err != nil {
		return "", err
	}

	// Highest offset first: a splice only moves bytes at or after its own
	// start, and every pending match starts before it.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]

		replacement, err := render(m, loader, opts)
		if err != nil {
			return "", err
		}

		doc = doc[:m.Start] + replacement + doc[m.End():]
	}

	return doc, nil
}

// render resolves the content of m and builds <tag attrs>content</tag>.
func render(m markup.Match, loader assets.Loader, opts SubstituteOptions) (string, error) {
	if m.Filename == "" {
		return "", &SubstituteError{Kind: m.Kind, Err: fmt.Errorf("%w: empty filename", assets.ErrMalformedReference)}
	}

	dropBody := m.Kind == markup.KindScript && strings.TrimSpace(m.Body) != ""
	if dropBody && opts.ScriptBody != ScriptBodyDrop {
		return "", &SubstituteError{Kind: m.Kind, Filename: m.Filename, Err: ErrScriptBody}
	}

	content, err := loader.Load(m.Filename)
	if err != nil {
		return "", &SubstituteError{Kind: m.Kind, Filename: m.Filename, Err: err}
	}

	// Reported only once the element is actually replaced.
	if dropBody && opts.OnDroppedBody != nil {
		opts.OnDroppedBody(m)
	}

	if opts.OnInline != nil {
		opts.OnInline(m, len(content))
	}

	text := string(content)
	if opts.EscapeClosingTags {
		text = escapeClosingTags(text)
	}

	tag := m.Kind.Tag()
	attrs := markup.Attributes(m)
	var b strings.Builder
	b.Grow(2*len(tag) + len(attrs) + len(text) + len("<></>"))
	b.WriteString("<" + tag)
	b.WriteString(attrs)
	b.WriteString(">")
	b.WriteString(text)
	b.WriteString("</" + tag + ">")

	return b.String(), nil
}

// escapeClosingTags turns </script and </style into <\/script and <\/style,
// keeping the original letter case.
func escapeClosingTags(content string) string {
	return closingTag.ReplaceAllString(content, `<\/$1`)
}

// checkSpans verifies matches lie inside doc, in ascending order, without overlap.
func checkSpans(doc string, matches []markup.Match) error {
	prevEnd := 0
	for i, m := range matches {
		if m.Start < prevEnd || m.Length <= 0 || m.End() > len(doc) {
			return &SubstituteError{
				Kind:     m.Kind,
				Filename: m.Filename,
				Err: fmt.Errorf("%w: match %d span [%d,%d) invalid for document of %d bytes after offset %d",
					assets.ErrMalformedReference, i, m.Start, m.End(), len(doc), prevEnd),
			}
		}
		prevEnd = m.End()
	}
	return nil
}
