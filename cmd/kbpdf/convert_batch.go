package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	kbpdf "github.com/alnah/go-kbpdf"
	"github.com/alnah/go-kbpdf/internal/mdblock"
	"github.com/alnah/go-kbpdf/internal/yamlutil"
)

// dirPermissions is used for output directories created on demand.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Sentinel errors for batch operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrFrontMatter      = errors.New("invalid front matter")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
	ErrConversionFailed = errors.New("conversion failed")
)

// Renderer writes one article to a PDF file.
type Renderer interface {
	RenderFile(ctx context.Context, in kbpdf.Input, path string) (*kbpdf.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*kbpdf.Engine)(nil)

// frontMatter is the optional YAML block at the top of an article.
type frontMatter struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Approved string `yaml:"approved"`
}

// conversionParams holds per-run values applied to every file.
type conversionParams struct {
	title    string // --title; front matter still wins
	category string
	approved string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// convertBatch renders files concurrently. The renderer is shared by all
// workers.
func convertBatch(ctx context.Context, r Renderer, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, r, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, r Renderer, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	in, err := buildInput(string(content), f.InputPath, params)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCreateOutputDir, err))
	}

	res, err := r.RenderFile(ctx, in, f.OutputPath)
	if err != nil {
		return fail(err)
	}

	result.Pages = res.Pages
	result.Duration = time.Since(start)
	return result
}

// buildInput splits off front matter and resolves the cover metadata.
// Title priority: front matter > --title > first H1 > file name.
func buildInput(content, path string, params *conversionParams) (kbpdf.Input, error) {
	var fm frontMatter
	body, err := yamlutil.ParseFrontMatter(content, &fm)
	if err != nil {
		return kbpdf.Input{}, fmt.Errorf("%w: %w", ErrFrontMatter, err)
	}

	meta := kbpdf.Metadata{
		Title:      firstNonEmpty(fm.Title, params.title, firstHeading(body), titleFromPath(path)),
		Category:   firstNonEmpty(fm.Category, params.category),
		ApprovedAt: firstNonEmpty(fm.Approved, params.approved),
	}
	return kbpdf.Input{Markdown: body, Metadata: meta}, nil
}

// firstHeading returns the plain text of the first level-1 heading.
func firstHeading(markdown string) string {
	for _, b := range mdblock.Classify(markdown) {
		if b.Kind != mdblock.KindHeading1 {
			continue
		}
		if text := strings.TrimSpace(mdblock.Plain(b.Text)); text != "" {
			return text
		}
	}
	return ""
}

// titleFromPath turns "refund-policy.md" into "refund policy".
func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %v)\n", r.InputPath, r.OutputPath, r.Pages, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError summarizes failures; it wraps the first failure so the exit
// code reflects its cause.
func batchError(results []ConversionResult) error {
	summary := countResults(results)
	if summary.Failed == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%w: %d of %d files: %w", ErrConversionFailed, summary.Failed, len(results), r.Err)
		}
	}
	return nil
}
