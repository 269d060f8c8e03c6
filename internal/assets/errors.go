package assets

import "errors"

// Sentinel errors for content resolution.
var (
	// ErrNotFound indicates a referenced file cannot be opened, or a referenced
	// name is absent from the resource table.
	ErrNotFound = errors.New("referenced content not found")

	// ErrReadFailure indicates a file was opened but reading its bytes failed.
	ErrReadFailure = errors.New("failed to read referenced content")

	// ErrPlatformResource indicates the resource subsystem failed during
	// lookup, load, lock, or size query.
	ErrPlatformResource = errors.New("platform resource error")

	// ErrMalformedReference indicates a matched element has no usable filename.
	ErrMalformedReference = errors.New("malformed reference")

	// ErrInvalidBasePath indicates the base directory cannot be resolved in strict mode.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrPathTraversal indicates a reference escapes the base directory in strict mode.
	ErrPathTraversal = errors.New("path traversal detected")
)
