package main

import (
	"errors"

	"github.com/alnah/go-inlinehtml"
	"github.com/alnah/go-inlinehtml/internal/config"
	"github.com/alnah/go-inlinehtml/internal/hints"
)

// hintedError carries a hint computed where the failing input was known.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// hintFor returns the hints that apply to err, or "" when none do.
// Combined batch errors get one hint per failure class.
func hintFor(err error) string {
	if err == nil {
		return ""
	}

	var found []string
	var he *hintedError
	if errors.As(err, &he) {
		found = append(found, he.hint)
	}

	switch {
	case errors.Is(err, config.ErrConfigNotFound) && he == nil:
		found = append(found, hints.ForConfigNotFound(nil))
	case errors.Is(err, ErrOutputCollision):
		found = append(found, hints.ForOutputCollision())
	}
	if errors.Is(err, inlinehtml.ErrScriptBody) {
		found = append(found, hints.ForScriptBody())
	}
	if errors.Is(err, inlinehtml.ErrPathTraversal) {
		found = append(found, hints.ForPathTraversal())
	}
	if errors.Is(err, inlinehtml.ErrNotFound) {
		found = append(found, hints.ForNotFound())
	}
	if errors.Is(err, ErrWriteOutput) {
		found = append(found, hints.ForOutputDirectory())
	}
	return hints.Join(found...)
}
