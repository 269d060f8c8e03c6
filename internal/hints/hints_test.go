package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		userPath := filepath.Join("home", ".config", "go-inlinehtml", "site.yaml")
		hint := ForConfigNotFound([]string{"site.yaml", userPath})

		if !strings.Contains(hint, "--config") {
			t.Errorf("hint %q should mention --config", hint)
		}
		if !strings.Contains(hint, "or create "+userPath) {
			t.Errorf("hint %q should suggest %s", hint, userPath)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"site.yaml", "site.yml"})
		if strings.Contains(hint, "or create") {
			t.Errorf("hint %q should not suggest a location", hint)
		}
	})
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"script body", ForScriptBody(), "--script-body drop"},
		{"path traversal", ForPathTraversal(), "--strict-paths"},
		{"not found", ForNotFound(), "directory of the document"},
		{"output collision", ForOutputCollision(), "-o"},
		{"output directory", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q should start with the hint prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForInvalidValue(t *testing.T) {
	t.Parallel()

	if got := ForInvalidValue(nil); got != "" {
		t.Errorf("ForInvalidValue(nil) = %q, want empty", got)
	}
	if got := ForInvalidValue([]string{"regex", "tokenizer"}); got != "\n  hint: available: regex, tokenizer" {
		t.Errorf("ForInvalidValue() = %q", got)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hints []string
		want  string
	}{
		{"none", nil, ""},
		{"only empty", []string{"", ""}, ""},
		{"single", []string{ForScriptBody()}, ForScriptBody()},
		{"repeats collapse", []string{ForNotFound(), ForNotFound()}, ForNotFound()},
		{"several", []string{format("a"), "", format("b")}, "\n  hint: a; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Join(tt.hints...); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}
