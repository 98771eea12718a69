// Package kbpdf renders knowledge base articles written in a small markdown
// dialect to paginated, branded A4 PDF documents.
//
// # Quick Start
//
// Create an engine once and render as many articles as needed:
//
//	engine, err := kbpdf.NewEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.RenderFile(ctx, kbpdf.Input{
//	    Markdown: "## Scope\n\nRefunds are processed within 5 days.",
//	    Metadata: kbpdf.Metadata{Title: "Refund policy", Category: "Payments"},
//	}, "refund-policy.pdf")
//
// # Document Structure
//
// Every document has the same shape:
//
//  1. A cover page with the title, category and approval date
//  2. A contents page listing every level-2 heading with its page number
//  3. The article body, paginated on fixed A4 geometry
//
// Every page carries a header band with optional logos and a footer with a
// caption and "Page N". The contents page is reserved before the body is
// laid out and filled in afterwards, once heading pages are known.
//
// # Markdown Dialect
//
// Recognized blocks: headings levels 1 to 4, bullets, numbered items, block
// quotes, horizontal rules, fenced code blocks, pipe tables, bold-only
// lines and paragraphs. Inline emphasis, code spans and links are reduced
// to their plain text.
//
// # Assets
//
// Fonts and logos are optional. Missing or unusable assets fall back to the
// built-in faces or are left out, and a warning is logged:
//
//	engine, err := kbpdf.NewEngine(
//	    kbpdf.WithAssetPath("/srv/brand"),
//	    kbpdf.WithLogger(slog.Default()),
//	)
//
// Asset directory structure:
//
//	brand/
//	├── fonts/
//	│   ├── SohneBreit-Kraftig.ttf
//	│   └── Inter-Regular.ttf
//	└── img/
//	    ├── ecommpay_white.png
//	    └── savi_white.png
//
// # Errors
//
// Rendering only fails when the output cannot be written (ErrSinkWrite) or
// the PDF backend breaks (ErrRender). Malformed markdown is normalized.
//
// An Engine is safe for concurrent use; every Render call builds its own
// document.
package kbpdf
