package markup

import "regexp"

// Attribute pairs must be preceded by whitespace so that data-src or
// data-href are never taken for the reference attribute.
const (
	relAttr  = `\s+rel\s*=\s*["']stylesheet["']`
	hrefAttr = `\s+href\s*=\s*["']([^"']*)["']`
	srcAttr  = `\s+src\s*=\s*["']([^"']*)["']`
)

var (
	// Group layout: rel first (1 pre, 2 mid, 3 href, 4 post),
	// href first (5 pre, 6 href, 7 mid, 8 post).
	stylePattern = regexp.MustCompile(`(?i)` +
		`<link\b([^>]*?)` + relAttr + `([^>]*?)` + hrefAttr + `([^>]*)>` +
		`|` +
		`<link\b([^>]*?)` + hrefAttr + `([^>]*?)` + relAttr + `([^>]*)>`)

	// Group layout: 1 pre, 2 src, 3 post, 4 body.
	scriptPattern = regexp.MustCompile(`(?is)` +
		`<script\b([^>]*?)` + srcAttr + `([^>]*)>(.*?)</script\s*>`)
)

// RegexMatcher scans documents with regular expressions. It does not understand
// comments, so a commented-out reference is still matched.
type RegexMatcher struct{}

// NewRegexMatcher creates a RegexMatcher.
func NewRegexMatcher() *RegexMatcher {
	return &RegexMatcher{}
}

// Match returns every element of the given kind in document order.
func (r *RegexMatcher) Match(doc string, kind Kind) []Match {
	switch kind {
	case KindStyle:
		return matchStyles(doc)
	case KindScript:
		return matchScripts(doc)
	default:
		return nil
	}
}

func matchStyles(doc string) []Match {
	locs := stylePattern.FindAllStringSubmatchIndex(doc, -1)
	matches := make([]Match, 0, len(locs))

	for _, loc := range locs {
		m := Match{
			Kind:   KindStyle,
			Start:  loc[0],
			Length: loc[1] - loc[0],
		}
		if loc[2] >= 0 {
			m.Fragments = []string{group(doc, loc, 1), group(doc, loc, 2), group(doc, loc, 4)}
			m.Filename = group(doc, loc, 3)
		} else {
			m.Fragments = []string{group(doc, loc, 5), group(doc, loc, 7), group(doc, loc, 8)}
			m.Filename = group(doc, loc, 6)
		}
		matches = append(matches, m)
	}

	return matches
}

func matchScripts(doc string) []Match {
	locs := scriptPattern.FindAllStringSubmatchIndex(doc, -1)
	matches := make([]Match, 0, len(locs))

	for _, loc := range locs {
		matches = append(matches, Match{
			Kind:      KindScript,
			Start:     loc[0],
			Length:    loc[1] - loc[0],
			Fragments: []string{group(doc, loc, 1), group(doc, loc, 3)},
			Filename:  group(doc, loc, 2),
			Body:      group(doc, loc, 4),
		})
	}

	return matches
}

// group returns submatch n, or "" when it did not participate.
func group(doc string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return doc[start:end]
}

// Compile-time interface check.
var _ Matcher = (*RegexMatcher)(nil)
