// Package markup locates stylesheet links and external script elements in HTML text.
// It works on raw text and byte offsets so that callers can splice replacements
// back into the original document.
package markup

import "strings"

// Kind identifies the element shape a Match was produced for.
type Kind int

const (
	KindStyle Kind = iota + 1
	KindScript
)

// String returns the kind name used in errors and logs.
func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Tag returns the wrapper tag name an inlined element of this kind uses.
func (k Kind) Tag() string {
	return k.String()
}

// Match is one located reference element.
// Start and Length are byte offsets into the document the match was taken from.
type Match struct {
	Kind      Kind
	Start     int
	Length    int
	Fragments []string // attribute text around the reference pair, in document order
	Filename  string
	Body      string // script body between the tags, always empty for styles
}

// End returns the offset one past the last byte of the element.
func (m Match) End() int {
	return m.Start + m.Length
}

// Matcher finds all elements of one kind in a document, ordered by Start.
type Matcher interface {
	Match(doc string, kind Kind) []Match
}

// Attributes renders the fragments of m as the attribute list of the wrapper tag.
// It returns "" when no attributes remain, otherwise a single space followed by
// the attribute text.
func Attributes(m Match) string {
	attrs := strings.TrimSpace(strings.Join(m.Fragments, ""))
	attrs = strings.TrimSpace(strings.TrimSuffix(attrs, "/"))
	if attrs == "" {
		return ""
	}
	return " " + attrs
}
