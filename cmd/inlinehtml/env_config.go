package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-inlinehtml/internal/config"
)

const envPrefix = "INLINEHTML_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // INLINEHTML_CONFIG: config file name or path
	OutputDir  string // INLINEHTML_OUTPUT_DIR: output directory
	Matcher    string // INLINEHTML_MATCHER: regex, tokenizer
	ScriptBody string // INLINEHTML_SCRIPT_BODY: reject, drop
	LogLevel   string // INLINEHTML_LOG_LEVEL: none, normal, debug
	Workers    int    // INLINEHTML_WORKERS: parallel workers

	// Warnings collects values that were set but ignored.
	Warnings []string
}

// knownEnvVars lists valid INLINEHTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"INLINEHTML_CONFIG":      true,
	"INLINEHTML_OUTPUT_DIR":  true,
	"INLINEHTML_MATCHER":     true,
	"INLINEHTML_SCRIPT_BODY": true,
	"INLINEHTML_WORKERS":     true,
	"INLINEHTML_LOG_LEVEL":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("INLINEHTML_CONFIG"),
		OutputDir:  os.Getenv("INLINEHTML_OUTPUT_DIR"),
		Matcher:    os.Getenv("INLINEHTML_MATCHER"),
		ScriptBody: os.Getenv("INLINEHTML_SCRIPT_BODY"),
		LogLevel:   os.Getenv("INLINEHTML_LOG_LEVEL"),
	}

	if workers := os.Getenv("INLINEHTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 && w <= MaxWorkers {
			cfg.Workers = w
		} else {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("ignoring INLINEHTML_WORKERS=%q (want 1-%d)", workers, MaxWorkers))
		}
	}

	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("unknown environment variable %s (typo?)", name))
		}
	}

	return cfg
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are applied afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Matcher != "" {
		cfg.Inline.Matcher = env.Matcher
	}
	if env.ScriptBody != "" {
		cfg.Inline.ScriptBody = env.ScriptBody
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
