package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-kbpdf/internal/config"
)

// envPrefix marks variables read by the CLI.
const envPrefix = "KBPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // KBPDF_CONFIG: config file name or path
	InputDir   string // KBPDF_INPUT_DIR: default input directory
	OutputDir  string // KBPDF_OUTPUT_DIR: default output directory
	AssetPath  string // KBPDF_ASSET_PATH: fonts and logos directory
	Category   string // KBPDF_CATEGORY: cover category
	Workers    int    // KBPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid KBPDF_* environment variables.
var knownEnvVars = map[string]bool{
	"KBPDF_CONFIG":     true,
	"KBPDF_INPUT_DIR":  true,
	"KBPDF_OUTPUT_DIR": true,
	"KBPDF_ASSET_PATH": true,
	"KBPDF_CATEGORY":   true,
	"KBPDF_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("KBPDF_CONFIG"),
		InputDir:   os.Getenv("KBPDF_INPUT_DIR"),
		OutputDir:  os.Getenv("KBPDF_OUTPUT_DIR"),
		AssetPath:  os.Getenv("KBPDF_ASSET_PATH"),
		Category:   os.Getenv("KBPDF_CATEGORY"),
	}

	// Invalid or non-positive values are ignored.
	if workers := os.Getenv("KBPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for each unrecognized KBPDF_*
// variable, so typos like KBPDF_OUTPUT_DIRS do not go unnoticed.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values the config file left empty.
// Resulting precedence: CLI flags > env vars > config file > defaults
// (flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Category != "" && cfg.Document.Category == "" {
		cfg.Document.Category = env.Category
	}
}
