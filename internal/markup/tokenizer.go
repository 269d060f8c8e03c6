package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenizerMatcher scans documents with the x/net/html tokenizer.
// Unlike RegexMatcher it skips comments and accepts unquoted attribute
// values. Remaining attributes are re-serialized in key="value" form, so
// their original quoting is not preserved.
//
// The tokenizer reads the content of raw-text elements as plain text.
// A <noscript> body is scanned again as markup, so its references match as
// they do under RegexMatcher. References inside <iframe>, <noembed>,
// <noframes>, <xmp>, <textarea> and <title> are not matched.
type TokenizerMatcher struct{}

// NewTokenizerMatcher creates a TokenizerMatcher.
func NewTokenizerMatcher() *TokenizerMatcher {
	return &TokenizerMatcher{}
}

type attr struct {
	key, val string
}

// Match returns every element of the given kind in document order.
func (t *TokenizerMatcher) Match(doc string, kind Kind) []Match {
	if kind != KindStyle && kind != KindScript {
		return nil
	}

	var (
		matches    []Match
		pending    *Match // open <script src> waiting for its end tag
		body       strings.Builder
		offset     int
		inNoscript bool
	)

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// A strings.Reader only ever fails with io.EOF, so an open
			// script without its end tag is simply left unmatched.
			return matches
		}

		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if tag == "noscript" && tt == html.StartTagToken {
				inNoscript = true
			}
			if tag == "link" && kind == KindStyle {
				if m, ok := styleFromAttrs(readAttrs(z, hasAttr)); ok {
					m.Start, m.Length = start, offset-start
					matches = append(matches, m)
				}
			}
			if tag == "script" && kind == KindScript && tt == html.StartTagToken {
				if m, ok := scriptFromAttrs(readAttrs(z, hasAttr)); ok {
					m.Start = start
					pending = &m
					body.Reset()
				}
			}
		case html.TextToken:
			if pending != nil {
				body.Write(z.Raw())
			}
			if inNoscript && pending == nil {
				for _, m := range t.Match(doc[start:offset], kind) {
					m.Start += start
					matches = append(matches, m)
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "noscript" {
				inNoscript = false
			}
			if pending != nil && string(name) == "script" {
				pending.Length = offset - pending.Start
				pending.Body = body.String()
				matches = append(matches, *pending)
				pending = nil
			}
		}
	}
}

func readAttrs(z *html.Tokenizer, more bool) []attr {
	var attrs []attr
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		attrs = append(attrs, attr{key: string(key), val: string(val)})
	}
	return attrs
}

func styleFromAttrs(attrs []attr) (Match, bool) {
	var (
		rel, href bool
		m         = Match{Kind: KindStyle}
	)
	for _, a := range attrs {
		switch {
		case a.key == "rel" && !rel && strings.EqualFold(strings.TrimSpace(a.val), "stylesheet"):
			rel = true
		case a.key == "href" && !href:
			href = true
			m.Filename = a.val
		default:
			m.Fragments = append(m.Fragments, renderAttr(a))
		}
	}
	return m, rel && href
}

func scriptFromAttrs(attrs []attr) (Match, bool) {
	var (
		src bool
		m   = Match{Kind: KindScript}
	)
	for _, a := range attrs {
		if a.key == "src" && !src {
			src = true
			m.Filename = a.val
			continue
		}
		m.Fragments = append(m.Fragments, renderAttr(a))
	}
	return m, src
}

func renderAttr(a attr) string {
	if a.val == "" {
		return " " + a.key
	}
	return " " + a.key + `="` + html.EscapeString(a.val) + `"`
}

// Compile-time interface check.
var _ Matcher = (*TokenizerMatcher)(nil)
