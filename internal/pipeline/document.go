package pipeline

import (
	"log/slog"

	"github.com/alnah/go-kbpdf/internal/canvas"
	"github.com/alnah/go-kbpdf/internal/mdblock"
)

// Page indexes fixed by the document structure.
const (
	coverPage = 0
	tocPage   = 1
)

// Default captions.
const (
	DefaultCaption  = "Powered by Savi × ecommpay"
	DefaultTOCTitle = "Table of Contents"
)

// Cover holds the values drawn on the cover page.
type Cover struct {
	Title    string
	Category string // omitted when empty
	Approved string // formatted approval date, omitted when empty
}

// TOCEntry is a heading recorded during layout. Page is 1-based.
type TOCEntry struct {
	Text  string
	Level int
	Page  int
}

// Options controls document layout.
type Options struct {
	Logger *slog.Logger

	// Caption is drawn left-aligned in every footer.
	Caption string

	// TOCTitle heads the reserved contents page.
	TOCTitle string

	// Subsections adds level-3 headings to the TOC.
	Subsections bool

	// Highlighter colors code lines when set.
	Highlighter *Highlighter

	// PrimaryLogo and SecondaryLogo name images registered on the canvas.
	PrimaryLogo   string
	SecondaryLogo string
}

func (o *Options) withDefaults() *Options {
	out := *o
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}
	if out.Caption == "" {
		out.Caption = DefaultCaption
	}
	if out.TOCTitle == "" {
		out.TOCTitle = DefaultTOCTitle
	}
	return &out
}

// Render lays out a complete document on an empty canvas: the cover page,
// the reserved contents page, the body, then the contents back-patch and
// the footer pass. It returns the recorded contents entries.
func Render(c *canvas.Canvas, cover Cover, blocks []mdblock.Block, opts Options) []TOCEntry {
	o := opts.withDefaults()

	DrawCover(c, cover, o)

	c.AddPage()
	drawHeader(c, o)

	flow := NewFlow(c, o)
	flow.Draw(blocks)
	entries := flow.TOC()

	PatchTOC(c, entries, o)
	StampFooters(c, o.Caption)

	o.Logger.Debug("layout complete", "pages", c.PageCount(), "toc_entries", len(entries))
	return entries
}
