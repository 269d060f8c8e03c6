package yamlutil_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-inlinehtml/internal/yamlutil"
)

type sample struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
	Flags struct {
		Strict bool `yaml:"strict"`
	} `yaml:"flags"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var got sample
	data := []byte("dir: dist\nlevel: debug\nflags:\n  strict: true\nextra: ignored\n")
	if err := yamlutil.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Dir != "dist" || got.Level != "debug" || !got.Flags.Strict {
		t.Errorf("Unmarshal() = %+v, want dir=dist level=debug strict=true", got)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known keys", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := yamlutil.UnmarshalStrict([]byte("dir: out\n"), &got); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if got.Dir != "out" {
			t.Errorf("Dir = %q, want %q", got.Dir, "out")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		var got sample
		err := yamlutil.UnmarshalStrict([]byte("dir: out\nunknown: 1\n"), &got)
		if err == nil {
			t.Fatal("UnmarshalStrict() error = nil, want error for unknown key")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil: decoding:") {
			t.Errorf("error = %q, want yamlutil: decoding: prefix", err)
		}
	})
}

func TestDecodeInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &sample{}, yamlutil.ErrEmptyInput},
		{"empty data", []byte{}, &sample{}, yamlutil.ErrEmptyInput},
		{"nil destination", []byte("dir: x"), nil, yamlutil.ErrNilDestination},
		{"too large", bytes.Repeat([]byte("a"), yamlutil.MaxInputSize+1), &sample{}, yamlutil.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := yamlutil.Unmarshal(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
			if err := yamlutil.UnmarshalStrict(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	t.Parallel()

	var got sample
	if err := yamlutil.Unmarshal([]byte("dir: [unclosed"), &got); err == nil {
		t.Error("Unmarshal() error = nil, want syntax error")
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := sample{Dir: "dist", Level: "none"}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back sample
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) error = %v\n%s", err, out)
	}
	if back.Dir != in.Dir || back.Level != in.Level {
		t.Errorf("decoded %+v, want %+v", back, in)
	}
}
