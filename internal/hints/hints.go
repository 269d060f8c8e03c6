// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appDir is the per-user config directory name searched by the config loader.
const appDir = "go-inlinehtml"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+appDir+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForScriptBody returns a hint for script elements that carry both a src
// attribute and inline content.
func ForScriptBody() string {
	return format("use --script-body drop to discard the inline content")
}

// ForPathTraversal returns a hint for references rejected by strict paths.
func ForPathTraversal() string {
	return format("move shared assets under the document directory or omit --strict-paths")
}

// ForNotFound returns a hint for missing referenced files.
func ForNotFound() string {
	return format("references resolve relative to the directory of the document")
}

// ForOutputCollision returns a hint for batches that map two documents to
// the same output path.
func ForOutputCollision() string {
	return format("use -o with a directory, or inline the colliding inputs separately")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidValue returns hints listing the accepted values for a setting.
func ForInvalidValue(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// Join combines hints, dropping empty ones and repeats, into one line.
func Join(hints ...string) string {
	var parts []string
	seen := make(map[string]bool, len(hints))
	for _, h := range hints {
		text := strings.TrimPrefix(h, "\n  hint: ")
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		parts = append(parts, text)
	}
	return formatHints(parts)
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
