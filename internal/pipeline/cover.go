package pipeline

import "github.com/alnah/go-kbpdf/internal/canvas"

// DrawCover creates the cover page: header band, article label, title,
// accent bar, the category and approval block, and the bottom band.
// Title lines that would reach the metadata block are dropped.
func DrawCover(c *canvas.Canvas, cover Cover, opts *Options) {
	o := opts.withDefaults()
	c.AddPage()
	drawHeader(c, o)

	y := coverLabelY
	c.TextLine(coverLabel, canvas.MarginLeft, y, canvas.ContentWidth, headingFont(coverLabelSize), colorOrange, canvas.AlignLeft)
	y += canvas.LineHeight(coverLabelSize) * 1.6

	titleFont := headingFont(coverTitleSize)
	lineH := canvas.LineHeight(coverTitleSize)
	for _, line := range c.Wrap(cover.Title, titleFont, canvas.ContentWidth) {
		if y+lineH > coverTitleBottom {
			o.Logger.Warn("cover title truncated", "title", cover.Title)
			break
		}
		c.TextLine(line, canvas.MarginLeft, y, canvas.ContentWidth, titleFont, colorPurple, canvas.AlignLeft)
		y += lineH
	}
	y += lineH / 2
	c.Gradient(canvas.MarginLeft, y, coverBarWidth, coverBarHeight, colorPurple, colorViolet)

	c.Line(canvas.MarginLeft, coverMetaY, canvas.MarginLeft+canvas.ContentWidth, coverMetaY, 0.5, colorCoverRule)
	if cover.Category != "" {
		drawCoverField(c, "Category", cover.Category, coverMetaY+coverMetaFirst)
	}
	if cover.Approved != "" {
		y := coverMetaY + coverMetaFirst
		if cover.Category != "" {
			y = coverMetaY + coverMetaSecond
		}
		drawCoverField(c, "Approved", cover.Approved, y)
	}

	c.Gradient(0, canvas.PageHeight-coverBandOffset, canvas.PageWidth, coverBandHeight, colorPurple, colorViolet)
}

// drawCoverField draws a small gray label with its value underneath.
func drawCoverField(c *canvas.Canvas, label, value string, y float64) {
	c.TextLine(label, canvas.MarginLeft, y, canvas.ContentWidth, headingFont(coverMetaLabel), colorMediumGray, canvas.AlignLeft)
	y += canvas.LineHeight(coverMetaLabel)
	c.TextLine(value, canvas.MarginLeft, y, canvas.ContentWidth, headingFont(coverMetaValue), colorPurple, canvas.AlignLeft)
}
