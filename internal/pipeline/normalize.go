package pipeline

import "strings"

// NormalizeLineEndings removes every carriage return from doc.
func NormalizeLineEndings(doc string) string {
	return strings.ReplaceAll(doc, "\r", "")
}
