package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/multierr"

	"github.com/alnah/go-inlinehtml"
	"github.com/alnah/go-inlinehtml/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		{"platform resource", inlinehtml.ErrPlatformResource, ExitPlatform},
		{"resource error", &inlinehtml.ResourceError{Op: "FindResource", Type: inlinehtml.TypeHTML, ID: 1, Err: os.ErrNotExist}, ExitPlatform},

		{"malformed reference", inlinehtml.ErrMalformedReference, ExitMalformed},
		{"script body", inlinehtml.ErrScriptBody, ExitMalformed},
		{"path traversal", inlinehtml.ErrPathTraversal, ExitMalformed},
		{"inline error wrapping script body", &inlinehtml.InlineError{Op: "inline", Element: "script", Name: "a.js", Err: inlinehtml.ErrScriptBody}, ExitMalformed},

		{"not found", inlinehtml.ErrNotFound, ExitIO},
		{"read failure", inlinehtml.ErrReadFailure, ExitIO},
		{"invalid base path", inlinehtml.ErrInvalidBasePath, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped not found", fmt.Errorf("index.html: %w", inlinehtml.ErrNotFound), ExitIO},

		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"output collision", ErrOutputCollision, ExitUsage},
		{"output is input", ErrOutputIsInput, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_CombinedErrors(t *testing.T) {
	t.Parallel()

	err := multierr.Combine(
		fmt.Errorf("a.html: %w", inlinehtml.ErrNotFound),
		fmt.Errorf("b.html: %w", inlinehtml.ErrScriptBody),
	)
	batch := &batchError{failed: 2, total: 3, err: err}

	// Malformed input ranks above I/O.
	if got := exitCodeFor(batch); got != ExitMalformed {
		t.Errorf("exitCodeFor(batch) = %d, want %d", got, ExitMalformed)
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	for name, code := range map[string]int{"ExitIO": ExitIO, "ExitPlatform": ExitPlatform, "ExitMalformed": ExitMalformed} {
		if code >= 126 {
			t.Errorf("%s = %d, should be < 126", name, code)
		}
	}
}
