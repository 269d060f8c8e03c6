package inlinehtml

import (
	"fmt"

	"github.com/alnah/go-inlinehtml/internal/assets"
	"github.com/alnah/go-inlinehtml/internal/pipeline"
)

// Sentinel errors for library operations. They are the same values the
// internal stages return, so errors.Is works across the whole chain.
var (
	ErrNotFound           = assets.ErrNotFound
	ErrReadFailure        = assets.ErrReadFailure
	ErrPlatformResource   = assets.ErrPlatformResource
	ErrMalformedReference = assets.ErrMalformedReference
	ErrScriptBody         = pipeline.ErrScriptBody

	// Strict path errors.
	ErrPathTraversal   = assets.ErrPathTraversal
	ErrInvalidBasePath = assets.ErrInvalidBasePath
)

// Element names reported by InlineError.
const (
	ElementDocument = "document"
	ElementStyle    = "style"
	ElementScript   = "script"
)

// InlineError is the single error value returned by a failed inlining call.
type InlineError struct {
	Op      string // "load" for the root document, "inline" for a reference
	Element string // ElementDocument, ElementStyle or ElementScript
	Name    string // filename, path, or resource identifier
	Err     error
}

func (e *InlineError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Element, e.Name, e.Err)
}

func (e *InlineError) Unwrap() error { return e.Err }
