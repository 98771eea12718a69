package pipeline

import (
	"strings"

	"github.com/alnah/go-kbpdf/internal/canvas"
	"github.com/alnah/go-kbpdf/internal/mdblock"
)

// Flow draws body blocks in document order, starting new pages when the
// remaining space runs out. It owns the layout cursor.
type Flow struct {
	c      *canvas.Canvas
	opts   *Options
	cursor canvas.Cursor
	last   mdblock.Kind
	drawn  bool
	toc    []TOCEntry
}

// lineDecor draws per-line decoration, such as a bullet or a quote bar,
// on the page where that line landed.
type lineDecor func(first bool, y, h float64)

// NewFlow starts a fresh body page on c and returns a Flow positioned at
// its top.
func NewFlow(c *canvas.Canvas, opts *Options) *Flow {
	f := &Flow{c: c, opts: opts.withDefaults()}
	f.newPage()
	return f
}

// Cursor returns the current layout position.
func (f *Flow) Cursor() canvas.Cursor {
	return f.cursor
}

// TOC returns the headings recorded so far, in document order.
func (f *Flow) TOC() []TOCEntry {
	return f.toc
}

// Draw lays out blocks in order.
func (f *Flow) Draw(blocks []mdblock.Block) {
	for _, b := range blocks {
		f.Block(b)
	}
}

// Block lays out one block, breaking the page first when too little space
// is left for it.
func (f *Flow) Block(b mdblock.Block) {
	need := blockBreakSpace
	if b.Kind == mdblock.KindHeading2 {
		need = headingBreakSpace
	}
	if f.cursor.Remaining() < need {
		f.newPage()
	}

	switch b.Kind {
	case mdblock.KindHeading1, mdblock.KindHeading2, mdblock.KindHeading3, mdblock.KindHeading4:
		f.heading(b)
	case mdblock.KindParagraph:
		f.text(mdblock.Plain(b.Text), canvas.MarginLeft, canvas.ContentWidth, bodyFont(bodySize), colorDarkGray, bodyLineGap, nil)
		f.cursor.Y += paragraphGap
	case mdblock.KindBoldLine:
		f.text(mdblock.Plain(b.Text), canvas.MarginLeft, canvas.ContentWidth, headingFont(bodySize), colorDarkGray, 0, nil)
		f.cursor.Y += boldLineGap
	case mdblock.KindBullet:
		f.bullet(b)
	case mdblock.KindNumbered:
		f.numbered(b)
	case mdblock.KindRule:
		f.rule()
	case mdblock.KindCode:
		f.code(b)
	case mdblock.KindTable:
		f.table(b.Table)
	case mdblock.KindBlockquote:
		f.blockquote(b)
	case mdblock.KindBlank:
		if !f.drawn || f.last != mdblock.KindBlank {
			f.cursor.Y += blankGap
		}
	}

	f.last = b.Kind
	f.drawn = true
}

// newPage appends a page with its header band and resets the cursor.
func (f *Flow) newPage() {
	page := f.c.AddPage()
	drawHeader(f.c, f.opts)
	f.cursor = canvas.Cursor{Page: page, Y: canvas.BodyTop}
}

// ensure starts a new page unless h more units fit on the current one.
func (f *Flow) ensure(h float64) {
	if !f.cursor.Fits(h) {
		f.newPage()
	}
}

// afterBlank reports whether the previous block was a blank line.
func (f *Flow) afterBlank() bool {
	return f.drawn && f.last == mdblock.KindBlank
}

// text wraps s to width and draws it line by line from the cursor. A line
// that does not fit moves to a new page. Returns the 0-based page of the
// first line.
func (f *Flow) text(s string, x, width float64, font canvas.Font, col canvas.Color, gap float64, decor lineDecor) int {
	h := canvas.LineHeight(font.Size) + gap
	first := -1
	for i, line := range f.c.Wrap(s, font, width) {
		f.ensure(h)
		if first < 0 {
			first = f.cursor.Page
		}
		if decor != nil {
			decor(i == 0, f.cursor.Y, h)
		}
		f.c.TextLine(line, x, f.cursor.Y, width, font, col, canvas.AlignLeft)
		f.cursor.Y += h
	}
	return first
}

func (f *Flow) heading(b mdblock.Block) {
	level := b.Kind.HeadingLevel()
	style := headingStyles[level]
	if level == 1 || !f.afterBlank() {
		f.cursor.Y += style.before
	}

	title := mdblock.Plain(b.Text)
	page := f.text(title, canvas.MarginLeft, canvas.ContentWidth, headingFont(style.size), style.color, 0, nil)

	if level == 2 || (level == 3 && f.opts.Subsections) {
		f.toc = append(f.toc, TOCEntry{Text: title, Level: level, Page: page + 1})
	}

	if style.bar > 0 {
		f.c.Gradient(canvas.MarginLeft, f.cursor.Y+accentBarGap, style.bar, accentBarSize, colorPurple, colorViolet)
		f.cursor.Y += accentBarGap + accentBarSize
	}
	f.cursor.Y += style.after
}

func (f *Flow) bullet(b mdblock.Block) {
	indent := min(float64(b.Indent)*bulletStep, maxBulletIndent)
	markerX := canvas.MarginLeft + bulletInset + indent
	textX := markerX + bulletTextGap
	width := canvas.ContentWidth - bulletTextTrim - indent

	dot := func(first bool, y, _ float64) {
		if first {
			f.c.Dot(markerX+bulletRadius, y+bodySize/2, bulletRadius, colorViolet)
		}
	}
	f.text(mdblock.Plain(b.Text), textX, width, bodyFont(bodySize), colorDarkGray, bodyLineGap, dot)
	f.cursor.Y += bulletGap
}

// numbered draws an ordered item with a generic bullet glyph. Ordinals are
// not kept.
func (f *Flow) numbered(b mdblock.Block) {
	f.text("• "+mdblock.Plain(b.Text), canvas.MarginLeft+bulletInset, canvas.ContentWidth-numberedTrim,
		bodyFont(bodySize), colorDarkGray, bodyLineGap, nil)
	f.cursor.Y += bulletGap
}

func (f *Flow) rule() {
	f.cursor.Y += ruleGapBefore
	f.c.Gradient(canvas.MarginLeft, f.cursor.Y, canvas.ContentWidth, 1, colorPurple, colorViolet)
	f.cursor.Y += 1 + ruleGapAfter
}

func (f *Flow) blockquote(b mdblock.Block) {
	bar := func(_ bool, y, h float64) {
		f.c.FillRect(canvas.MarginLeft+quoteBarInset, y, quoteBarWidth, h, colorOrange)
	}
	f.text(mdblock.Plain(b.Text), canvas.MarginLeft+quoteTextInset, canvas.ContentWidth-quoteTextTrim,
		bodyFont(bodySize), colorMediumGray, bodyLineGap, bar)
	f.cursor.Y += quoteGap
}

// code draws one source line on a shaded strip. Lines are never wrapped;
// text past the strip is cut.
func (f *Flow) code(b mdblock.Block) {
	f.ensure(codeStripH)
	y := f.cursor.Y
	f.c.FillRect(canvas.MarginLeft, y, canvas.ContentWidth, codeStripH, colorCodeStrip)

	line := strings.ReplaceAll(b.Text, "\t", strings.Repeat(" ", codeTabWidth))
	font := canvas.Font{Face: canvas.FaceMono, Size: codeSize}
	x := canvas.MarginLeft + codeTextInset
	right := canvas.MarginLeft + canvas.ContentWidth - codeTextInset

	for _, span := range f.opts.Highlighter.Spans(b.Lang, line) {
		if x >= right {
			break
		}
		x += f.c.TextLine(span.Text, x, y+codeTextOffset, right-x, font, span.Color, canvas.AlignLeft)
	}
	f.cursor.Y += codeStripH
}
