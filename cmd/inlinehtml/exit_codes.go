package main

import (
	"errors"
	"os"

	"github.com/alnah/go-inlinehtml"
	"github.com/alnah/go-inlinehtml/internal/config"
)

// Exit codes for the inlinehtml CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // All documents inlined
	ExitGeneral   = 1 // General/unexpected error, including cancellation
	ExitUsage     = 2 // Invalid flags, config, or output plan
	ExitIO        = 3 // Missing or unreadable file, failed write
	ExitPlatform  = 4 // Resource store errors
	ExitMalformed = 5 // Malformed reference or rejected script body
)

// exitCodeFor returns the exit code for err. Wrapped and combined errors
// are inspected with errors.Is; the first matching class below wins.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, inlinehtml.ErrPlatformResource) {
		return ExitPlatform
	}

	if errors.Is(err, inlinehtml.ErrMalformedReference) ||
		errors.Is(err, inlinehtml.ErrScriptBody) ||
		errors.Is(err, inlinehtml.ErrPathTraversal) {
		return ExitMalformed
	}

	if errors.Is(err, inlinehtml.ErrNotFound) ||
		errors.Is(err, inlinehtml.ErrReadFailure) ||
		errors.Is(err, inlinehtml.ErrInvalidBasePath) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, ErrOutputIsInput) {
		return ExitUsage
	}

	return ExitGeneral
}
