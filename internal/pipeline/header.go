package pipeline

import "github.com/alnah/go-kbpdf/internal/canvas"

// drawHeader paints the brand band at the top of the focused page. Logos
// that were never registered on the canvas are left out.
func drawHeader(c *canvas.Canvas, opts *Options) {
	c.FillRect(0, 0, canvas.PageWidth, headerHeight, colorPurple)
	c.Image(opts.PrimaryLogo, canvas.MarginLeft, primaryLogoY, primaryLogoHeight)
	c.Image(opts.SecondaryLogo, canvas.PageWidth-canvas.MarginRight-secondaryLogoInset, secondaryLogoY, secondaryLogoHeight)
	c.Gradient(0, headerHeight, canvas.PageWidth, headerRuleHeight, colorPurple, colorViolet)
}
