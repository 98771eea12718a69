// Package config loads the kbpdf YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-kbpdf/internal/assets"
	"github.com/alnah/go-kbpdf/internal/dateutil"
	"github.com/alnah/go-kbpdf/internal/fileutil"
	"github.com/alnah/go-kbpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-kbpdf"

// Field length limits.
const (
	MaxPathLength      = 4096 // Directory paths
	MaxCategoryLength  = 100  // "Payments", "Onboarding"
	MaxDateLength      = 30   // "2025-03-03T08:15:00Z" or "auto"
	MaxCaptionLength   = 200  // Footer caption
	MaxTOCTitleLength  = 100  // TOC heading
	MaxAssetNameLength = 100  // Font or logo file stem
	MaxStyleNameLength = 50   // Chroma style name
)

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Assets   AssetsConfig   `yaml:"assets"`
	Footer   FooterConfig   `yaml:"footer"`
	TOC      TOCConfig      `yaml:"toc"`
	Code     CodeConfig     `yaml:"code"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig holds cover metadata applied to every converted file.
// Front matter in a file overrides these values.
type DocumentConfig struct {
	Category   string `yaml:"category"`
	Approved   string `yaml:"approved"`   // ISO-8601 or "auto"
	DateFormat string `yaml:"dateFormat"` // Tokens or preset (default "D MMMM YYYY")
}

// AssetsConfig defines where fonts and logos come from.
type AssetsConfig struct {
	BasePath string      `yaml:"basePath"` // Empty = built-in faces, no logos
	Fonts    FontsConfig `yaml:"fonts"`
	Logos    LogosConfig `yaml:"logos"`
}

// FontsConfig names the TrueType files under basePath/fonts, without extension.
type FontsConfig struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Mono    string `yaml:"mono"`
}

// LogosConfig names the images under basePath/img, without extension.
type LogosConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// FooterConfig defines the page footer.
type FooterConfig struct {
	Caption string `yaml:"caption"` // Empty = default caption
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Title       string `yaml:"title"`       // Empty = "Table of Contents"
	Subsections bool   `yaml:"subsections"` // Include level-3 headings
}

// CodeConfig defines code block options.
type CodeConfig struct {
	Style string `yaml:"style"` // Chroma style name (empty = monochrome)
}

// Validate checks field lengths and formats.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.category", c.Document.Category, MaxCategoryLength},
		{"document.approved", c.Document.Approved, MaxDateLength},
		{"document.dateFormat", c.Document.DateFormat, dateutil.MaxDateFormatLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.fonts.heading", c.Assets.Fonts.Heading, MaxAssetNameLength},
		{"assets.fonts.body", c.Assets.Fonts.Body, MaxAssetNameLength},
		{"assets.fonts.mono", c.Assets.Fonts.Mono, MaxAssetNameLength},
		{"assets.logos.primary", c.Assets.Logos.Primary, MaxAssetNameLength},
		{"assets.logos.secondary", c.Assets.Logos.Secondary, MaxAssetNameLength},
		{"footer.caption", c.Footer.Caption, MaxCaptionLength},
		{"toc.title", c.TOC.Title, MaxTOCTitleLength},
		{"code.style", c.Code.Style, MaxStyleNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Document.DateFormat != "" {
		if _, err := dateutil.ResolveFormat(c.Document.DateFormat); err != nil {
			return fmt.Errorf("%w: document.dateFormat: %v", ErrInvalidField, err)
		}
	}

	names := []struct{ field, value string }{
		{"assets.fonts.heading", c.Assets.Fonts.Heading},
		{"assets.fonts.body", c.Assets.Fonts.Body},
		{"assets.fonts.mono", c.Assets.Fonts.Mono},
		{"assets.logos.primary", c.Assets.Logos.Primary},
		{"assets.logos.secondary", c.Assets.Logos.Secondary},
	}
	for _, n := range names {
		if n.value == "" {
			continue
		}
		if err := assets.ValidateAssetName(n.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidField, n.field, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that relies on built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NotFoundError lists the paths searched for a config file.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

// Unwrap makes errors.Is(err, ErrConfigNotFound) succeed.
func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-kbpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if dir, err := userConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, AppDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Searched: tried}
}
