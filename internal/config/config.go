package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-inlinehtml/internal/fileutil"
	"github.com/alnah/go-inlinehtml/internal/yamlutil"
)

// AppName names the per-user config directory.
const AppName = "go-inlinehtml"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Accepted values for enumerated fields.
var (
	Matchers     = []string{"regex", "tokenizer"}
	ScriptBodies = []string{"reject", "drop"}
	LogLevels    = []string{"none", "normal", "debug"}
)

// Config holds the CLI configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Inline InlineConfig `yaml:"inline"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = next to each input
}

// InlineConfig mirrors the inliner options.
type InlineConfig struct {
	Matcher           string `yaml:"matcher"`    // "regex" or "tokenizer"
	ScriptBody        string `yaml:"scriptBody"` // "reject" or "drop"
	EscapeClosingTags bool   `yaml:"escapeClosingTags"`
	StrictPaths       bool   `yaml:"strictPaths"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Inline: InlineConfig{Matcher: "regex", ScriptBody: "reject"},
		Log:    LogConfig{Level: "normal"},
	}
}

// Validate checks enumerated fields. Empty values are accepted and mean
// the default.
func (c *Config) Validate() error {
	if err := validateOneOf("inline.matcher", c.Inline.Matcher, Matchers); err != nil {
		return err
	}
	if err := validateOneOf("inline.scriptBody", c.Inline.ScriptBody, ScriptBodies); err != nil {
		return err
	}
	return validateOneOf("log.level", c.Log.Level, LogLevels)
}

func validateOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s = %q (must be one of %s)", ErrInvalidValue, field, value, strings.Join(allowed, ", "))
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; anything else is
// searched as a name in the standard locations. Settings absent from the
// file take their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Inline.Matcher == "" {
		c.Inline.Matcher = def.Inline.Matcher
	}
	if c.Inline.ScriptBody == "" {
		c.Inline.ScriptBody = def.Inline.ScriptBody
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// name.yaml then name.yml, first in the current directory, then in the user
// config directory under AppName.
func SearchPaths(name string) []string {
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppName))
	}

	paths := make([]string, 0, 2*len(dirs))
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, candidate := range tried {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
