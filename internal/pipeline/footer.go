package pipeline

import (
	"fmt"

	"github.com/alnah/go-kbpdf/internal/canvas"
)

// StampFooters draws the footer on every page in increasing order, then
// leaves the focus where it was. No page is created.
func StampFooters(c *canvas.Canvas, caption string) {
	for i := range c.PageCount() {
		c.Patch(i, func() {
			drawFooter(c, i+1, caption)
		})
	}
}

// drawFooter paints the separator, the caption and the 1-based page number.
func drawFooter(c *canvas.Canvas, number int, caption string) {
	y := canvas.PageHeight - footerOffset
	half := canvas.ContentWidth / 2

	c.Gradient(canvas.MarginLeft, y, canvas.ContentWidth, 1, colorPurple, colorViolet)
	c.TextLine(caption, canvas.MarginLeft, y+footerTextDrop, half, bodyFont(footerSize), colorMediumGray, canvas.AlignLeft)
	c.TextLine(fmt.Sprintf("Page %d", number), canvas.PageWidth/2, y+footerTextDrop, half, bodyFont(footerSize), colorMediumGray, canvas.AlignRight)
}
