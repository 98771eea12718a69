package kbpdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-kbpdf/internal/assets"
	"github.com/alnah/go-kbpdf/internal/canvas"
	"github.com/alnah/go-kbpdf/internal/fileutil"
	"github.com/alnah/go-kbpdf/internal/mdblock"
	"github.com/alnah/go-kbpdf/internal/pipeline"
)

// Canvas image names for the header logos.
const (
	primaryLogoImage   = "logo-primary"
	secondaryLogoImage = "logo-secondary"
)

// outputPerm is the permission of files written by RenderFile.
const outputPerm = 0o644

// namedFont is a loaded font waiting to be registered on each canvas.
type namedFont struct {
	face canvas.Face
	name string
	data []byte
}

// namedImage is a loaded logo waiting to be registered on each canvas.
type namedImage struct {
	key  string
	name string
	img  *Image
}

// Engine renders articles to PDF. Create with NewEngine; an Engine holds
// no per-document state and is safe for concurrent use.
type Engine struct {
	cfg         engineConfig
	logger      *slog.Logger
	now         func() time.Time
	fonts       []namedFont
	logos       []namedImage
	highlighter *pipeline.Highlighter
}

// NewEngine creates an Engine. Fonts and logos are loaded once here;
// missing ones are logged and replaced by built-in defaults.
// Returns ErrInvalidAssetPath or ErrInvalidDateFormat for bad options.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		fonts: DefaultFontNames,
		logos: DefaultLogoNames,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		cfg:    cfg,
		logger: cfg.logger,
		now:    cfg.clock,
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if cfg.codeStyle != "" {
		e.highlighter = pipeline.NewHighlighter(cfg.codeStyle)
	}

	if _, err := e.formatDate(time.Time{}); err != nil {
		return nil, err
	}

	loader, err := cfg.assetLoader()
	if err != nil {
		return nil, err
	}
	if loader != nil {
		e.loadAssets(loader)
	}

	return e, nil
}

// assetLoader combines the custom loader and the asset directory, custom first.
func (c *engineConfig) assetLoader() (assets.Loader, error) {
	var chain assets.Chain
	if c.loader != nil {
		chain = append(chain, c.loader)
	}
	if c.assetPath != "" {
		fs, err := assets.NewFilesystemLoader(c.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		chain = append(chain, fs)
	}
	if len(chain) == 0 {
		return nil, nil
	}
	return chain, nil
}

// loadAssets fetches every named font and logo. Failures are logged and
// skipped.
func (e *Engine) loadAssets(loader assets.Loader) {
	for _, f := range []namedFont{
		{face: canvas.FaceHeading, name: e.cfg.fonts.Heading},
		{face: canvas.FaceBody, name: e.cfg.fonts.Body},
		{face: canvas.FaceMono, name: e.cfg.fonts.Mono},
	} {
		if f.name == "" {
			continue
		}
		data, err := loader.LoadFont(f.name)
		if err != nil {
			e.logger.Warn("font unavailable, using built-in face", "font", f.name, "error", err)
			continue
		}
		f.data = data
		e.fonts = append(e.fonts, f)
	}

	for _, l := range []namedImage{
		{key: primaryLogoImage, name: e.cfg.logos.Primary},
		{key: secondaryLogoImage, name: e.cfg.logos.Secondary},
	} {
		if l.name == "" {
			continue
		}
		img, err := loader.LoadImage(l.name)
		if err != nil {
			e.logger.Warn("logo unavailable, header drawn without it", "logo", l.name, "error", err)
			continue
		}
		l.img = img
		e.logos = append(e.logos, l)
	}
}

// Render lays out the article and writes the PDF to w.
// The context is checked between phases; a cancelled render writes nothing.
// Write failures return ErrSinkWrite; backend failures and internal panics
// return ErrRender. Nothing else fails a render.
func (e *Engine) Render(ctx context.Context, in Input, w io.Writer) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := canvas.New()
	e.registerAssets(c)

	approved, approvedText := e.approval(in.Metadata.ApprovedAt)
	created := approved
	if created.IsZero() {
		created = e.now()
	}
	c.SetInfo(in.Metadata.Title, DocumentAuthor, DocumentCreator, created)

	blocks := mdblock.Classify(in.Markdown)
	entries := pipeline.Render(c, pipeline.Cover{
		Title:    in.Metadata.Title,
		Category: in.Metadata.Category,
		Approved: approvedText,
	}, blocks, pipeline.Options{
		Logger:        e.logger,
		Caption:       e.cfg.caption,
		TOCTitle:      e.cfg.tocTitle,
		Subsections:   e.cfg.subsections,
		Highlighter:   e.highlighter,
		PrimaryLogo:   primaryLogoImage,
		SecondaryLogo: secondaryLogoImage,
	})
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := c.WriteTo(w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}

	result = &Result{Pages: c.PageCount(), TOC: make([]TOCEntry, len(entries))}
	for i, entry := range entries {
		result.TOC[i] = TOCEntry(entry)
	}
	e.logger.Debug("rendered document", "title", in.Metadata.Title, "pages", result.Pages, "toc_entries", len(result.TOC))
	return result, nil
}

// RenderFile renders to path. The document is written to a temporary file
// beside path and renamed on success, so a failed render leaves any
// existing file untouched.
func (e *Engine) RenderFile(ctx context.Context, in Input, path string) (*Result, error) {
	var (
		result    *Result
		renderErr error
	)
	err := fileutil.AtomicWriteFile(path, outputPerm, func(w io.Writer) error {
		result, renderErr = e.Render(ctx, in, w)
		return renderErr
	})
	if err != nil {
		if renderErr == nil && !errors.Is(err, ErrSinkWrite) {
			err = fmt.Errorf("%w: %w", ErrSinkWrite, err)
		}
		return nil, err
	}
	return result, nil
}

// registerAssets installs the preloaded fonts and logos on c. A font the
// PDF writer rejects keeps the built-in face.
func (e *Engine) registerAssets(c *canvas.Canvas) {
	for _, f := range e.fonts {
		if err := c.RegisterFont(f.face, f.data); err != nil {
			e.logger.Warn("font unusable, using built-in face", "font", f.name, "error", err)
		}
	}
	for _, l := range e.logos {
		if err := c.RegisterImage(l.key, l.img.Data, l.img.Type); err != nil {
			e.logger.Warn("logo unusable, header drawn without it", "logo", l.name, "error", err)
		}
	}
}
