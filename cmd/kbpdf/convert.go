package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	kbpdf "github.com/alnah/go-kbpdf"
	"github.com/alnah/go-kbpdf/internal/config"
)

// runConvert loads configuration, discovers files and renders them.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, logger *slog.Logger, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(firstNonEmpty(flags.common.config, envCfg.ConfigPath))
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputPath)
	}

	engine, err := kbpdf.NewEngine(engineOptions(cfg, logger, env.Now)...)
	if err != nil {
		return err
	}

	params := &conversionParams{
		title:    flags.document.title,
		category: cfg.Document.Category,
		approved: cfg.Document.Approved,
	}
	poolSize := resolvePoolSize(workers)
	logger.Debug("converting", "files", len(files), "workers", poolSize)

	results := convertBatch(ctx, engine, files, params, poolSize)
	printResults(results, flags.common.quiet, flags.common.verbose, env)
	return batchError(results)
}

// loadConfig loads the named config, or returns defaults when no name is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags overrides config values with explicitly set CLI flags.
func mergeFlags(f *convertFlags, cfg *config.Config) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&cfg.Document.Category, f.document.category)
	override(&cfg.Document.Approved, f.document.approved)
	override(&cfg.Document.DateFormat, f.document.dateFormat)

	override(&cfg.Assets.BasePath, f.assets.assetPath)
	override(&cfg.Assets.Fonts.Heading, f.assets.headingFont)
	override(&cfg.Assets.Fonts.Body, f.assets.bodyFont)
	override(&cfg.Assets.Fonts.Mono, f.assets.monoFont)
	override(&cfg.Assets.Logos.Primary, f.assets.primaryLogo)
	override(&cfg.Assets.Logos.Secondary, f.assets.secondaryLogo)

	override(&cfg.TOC.Title, f.toc.title)
	if f.toc.subsections {
		cfg.TOC.Subsections = true
	}
	override(&cfg.Footer.Caption, f.caption)
	override(&cfg.Code.Style, f.codeStyle)
}

// engineOptions translates the merged config into engine options.
// Empty font and logo names keep the engine defaults.
func engineOptions(cfg *config.Config, logger *slog.Logger, now func() time.Time) []kbpdf.Option {
	fonts := kbpdf.DefaultFontNames
	fonts.Heading = firstNonEmpty(cfg.Assets.Fonts.Heading, fonts.Heading)
	fonts.Body = firstNonEmpty(cfg.Assets.Fonts.Body, fonts.Body)
	fonts.Mono = firstNonEmpty(cfg.Assets.Fonts.Mono, fonts.Mono)

	logos := kbpdf.DefaultLogoNames
	logos.Primary = firstNonEmpty(cfg.Assets.Logos.Primary, logos.Primary)
	logos.Secondary = firstNonEmpty(cfg.Assets.Logos.Secondary, logos.Secondary)

	opts := []kbpdf.Option{
		kbpdf.WithLogger(logger),
		kbpdf.WithClock(now),
		kbpdf.WithCaption(cfg.Footer.Caption),
		kbpdf.WithTOCTitle(cfg.TOC.Title),
		kbpdf.WithSubsectionsInTOC(cfg.TOC.Subsections),
		kbpdf.WithCodeHighlighting(cfg.Code.Style),
		kbpdf.WithDateFormat(cfg.Document.DateFormat),
		kbpdf.WithFontNames(fonts),
		kbpdf.WithLogoNames(logos),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, kbpdf.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// resolveInputPath returns the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the output directory from flag or config.
// Empty means PDFs are written next to their sources.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
