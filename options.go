package inlinehtml

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-inlinehtml/internal/pipeline"
)

// Option configures an Inliner.
type Option func(*Inliner)

// MatcherKind selects how reference elements are located.
type MatcherKind int

const (
	// MatcherRegex scans with regular expressions. Commented-out references
	// are matched too.
	MatcherRegex MatcherKind = iota
	// MatcherTokenizer scans with an HTML tokenizer. Comments are skipped and
	// unquoted attribute values are accepted.
	MatcherTokenizer
)

// String returns the configuration name of the matcher.
func (k MatcherKind) String() string {
	switch k {
	case MatcherRegex:
		return "regex"
	case MatcherTokenizer:
		return "tokenizer"
	default:
		return fmt.Sprintf("matcher(%d)", int(k))
	}
}

// ParseMatcherKind converts "regex" or "tokenizer" (case-insensitive) to a MatcherKind.
func ParseMatcherKind(s string) (MatcherKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regex":
		return MatcherRegex, nil
	case "tokenizer":
		return MatcherTokenizer, nil
	default:
		return 0, fmt.Errorf("unknown matcher %q (must be regex or tokenizer)", s)
	}
}

// ScriptBodyPolicy decides how a <script src> element with body text is handled.
type ScriptBodyPolicy = pipeline.ScriptBodyPolicy

const (
	// ScriptBodyReject fails the call with ErrScriptBody. This is the default.
	ScriptBodyReject = pipeline.ScriptBodyReject
	// ScriptBodyDrop discards the body and logs a warning.
	ScriptBodyDrop = pipeline.ScriptBodyDrop
)

// ParseScriptBodyPolicy converts "reject" or "drop" (case-insensitive) to a policy.
func ParseScriptBodyPolicy(s string) (ScriptBodyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return ScriptBodyReject, nil
	case "drop":
		return ScriptBodyDrop, nil
	default:
		return 0, fmt.Errorf("unknown script body policy %q (must be reject or drop)", s)
	}
}

// WithLogger sets the logger for debug and warning output.
// A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(in *Inliner) {
		if log == nil {
			log = zap.NewNop()
		}
		in.log = log.Named("inline")
	}
}

// WithMatcher selects the matcher implementation.
// Panics if kind is not MatcherRegex or MatcherTokenizer.
func WithMatcher(kind MatcherKind) Option {
	if kind != MatcherRegex && kind != MatcherTokenizer {
		panic("inlinehtml: WithMatcher unknown matcher kind")
	}
	return func(in *Inliner) {
		in.matcherKind = kind
	}
}

// WithScriptBody sets the policy for <script src> elements with body text.
func WithScriptBody(policy ScriptBodyPolicy) Option {
	return func(in *Inliner) {
		in.scriptBody = policy
	}
}

// WithEscapeClosingTags rewrites </script and </style inside inlined content
// to <\/script and <\/style so content cannot close its wrapper element.
func WithEscapeClosingTags() Option {
	return func(in *Inliner) {
		in.escapeClosingTags = true
	}
}

// WithStrictPaths makes path mode reject references that resolve outside the
// root document's directory, with ErrPathTraversal.
func WithStrictPaths() Option {
	return func(in *Inliner) {
		in.strictPaths = true
	}
}
