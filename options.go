package kbpdf

import (
	"log/slog"
	"time"
)

// engineConfig holds settings collected from options.
type engineConfig struct {
	assetPath   string
	loader      AssetLoader
	logger      *slog.Logger
	caption     string
	tocTitle    string
	subsections bool
	codeStyle   string
	dateFormat  string
	clock       func() time.Time
	fonts       FontNames
	logos       LogoNames
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithAssetPath loads fonts and logos from a directory on disk.
// Combined with WithAssetLoader, the custom loader is tried first.
func WithAssetPath(path string) Option {
	return func(c *engineConfig) {
		c.assetPath = path
	}
}

// WithAssetLoader sets a custom loader for fonts and logos.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *engineConfig) {
		c.loader = loader
	}
}

// WithLogger sets the logger for asset fallbacks and render summaries.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithCaption sets the text drawn at the left of every footer.
func WithCaption(caption string) Option {
	return func(c *engineConfig) {
		c.caption = caption
	}
}

// WithTOCTitle sets the heading of the contents page.
func WithTOCTitle(title string) Option {
	return func(c *engineConfig) {
		c.tocTitle = title
	}
}

// WithSubsectionsInTOC lists level-3 headings on the contents page too.
func WithSubsectionsInTOC(enabled bool) Option {
	return func(c *engineConfig) {
		c.subsections = enabled
	}
}

// WithCodeHighlighting colors code block tokens with a chroma style
// (e.g. "github", "monokai"). Unknown names fall back to the default style.
// An empty name keeps code monochrome.
func WithCodeHighlighting(style string) Option {
	return func(c *engineConfig) {
		c.codeStyle = style
	}
}

// WithDateFormat sets how the approval date is printed on the cover.
// Accepts tokens (YYYY, MMMM, DD...) or a preset name (iso, european, us,
// long, british). Default "D MMMM YYYY".
func WithDateFormat(format string) Option {
	return func(c *engineConfig) {
		c.dateFormat = format
	}
}

// WithClock sets the time source for "auto" approval dates and the PDF
// creation date.
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) {
		c.clock = now
	}
}

// WithFontNames selects which fonts to load. Defaults to DefaultFontNames.
func WithFontNames(names FontNames) Option {
	return func(c *engineConfig) {
		c.fonts = names
	}
}

// WithLogoNames selects which logos to load. Defaults to DefaultLogoNames.
func WithLogoNames(names LogoNames) Option {
	return func(c *engineConfig) {
		c.logos = names
	}
}
