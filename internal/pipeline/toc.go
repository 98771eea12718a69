package pipeline

import (
	"strconv"

	"github.com/alnah/go-kbpdf/internal/canvas"
)

// PatchTOC writes the contents listing onto the reserved page. It runs
// after layout, once every entry's page is final, and never creates pages:
// entries that would run into the footer zone are dropped and logged.
// Returns the number of entries drawn.
func PatchTOC(c *canvas.Canvas, entries []TOCEntry, opts *Options) int {
	o := opts.withDefaults()
	drawn := 0

	ok := c.Patch(tocPage, func() {
		y := canvas.BodyTop
		c.TextLine(o.TOCTitle, canvas.MarginLeft, y, canvas.ContentWidth, headingFont(tocTitleSize), colorPurple, canvas.AlignLeft)
		y += canvas.LineHeight(tocTitleSize)
		c.Gradient(canvas.MarginLeft, y+accentBarGap, headingStyles[1].bar, accentBarSize, colorPurple, colorViolet)
		y += accentBarGap + accentBarSize + tocTitleGap

		for _, e := range entries {
			top := e.Level <= 2
			size, indent, gap := tocEntrySize, 0.0, tocEntryGap
			font := headingFont(size)
			if !top {
				size, indent, gap = tocSubSize, tocSubIndent, tocSubGap
				font = bodyFont(size)
			}

			h := canvas.LineHeight(size)
			if y+h > canvas.BodyBottom {
				break
			}
			c.TextLine(e.Text, canvas.MarginLeft+indent, y, canvas.ContentWidth-indent-tocNumberRoom, font, colorDarkGray, canvas.AlignLeft)
			c.TextLine(strconv.Itoa(e.Page), canvas.MarginLeft, y, canvas.ContentWidth, bodyFont(size), colorMediumGray, canvas.AlignRight)
			y += h + gap
			drawn++
		}
	})
	if !ok {
		o.Logger.Warn("contents page missing, table of contents skipped")
		return 0
	}

	if drawn < len(entries) {
		o.Logger.Warn("table of contents clipped", "drawn", drawn, "total", len(entries))
	}
	return drawn
}
