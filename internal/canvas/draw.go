package canvas

import "github.com/jung-kurt/gofpdf"

// TextLine draws a single line of text with its top edge at y. Text wider
// than width is cut to fit; width <= 0 disables fitting and alignment.
// Returns the drawn width.
func (c *Canvas) TextLine(text string, x, y, width float64, f Font, col Color, align Align) float64 {
	if width > 0 {
		text = c.Fit(text, f, width)
	}
	spec := c.useFont(f)
	enc := encode(spec, text)
	w := c.pdf.GetStringWidth(enc)

	tx := x
	if width > 0 {
		switch align {
		case AlignRight:
			tx = x + width - w
		case AlignCenter:
			tx = x + (width-w)/2
		}
	}

	// Setting the fill to the text color writes the color operator into
	// the focused page even when it was last set on another page.
	r, g, b := col.RGB()
	c.pdf.SetTextColor(r, g, b)
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Text(tx, y+f.Size*baselineRatio, enc)

	c.emit(Op{Kind: OpText, Text: text, X: tx, Y: y, W: w, H: LineHeight(f.Size), Font: f, Color: col})
	return w
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.RGB())
	c.pdf.Rect(x, y, w, h, "F")
	c.emit(Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: col})
}

// StrokeRect outlines a rectangle.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col Color) {
	c.pdf.SetDrawColor(col.RGB())
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.Rect(x, y, w, h, "D")
	c.emit(Op{Kind: OpStroke, X: x, Y: y, W: w, H: h, Color: col})
}

// Line draws a straight segment.
func (c *Canvas) Line(x1, y1, x2, y2, lineWidth float64, col Color) {
	c.pdf.SetDrawColor(col.RGB())
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.Line(x1, y1, x2, y2)
	c.emit(Op{Kind: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: col})
}

// Gradient fills a rectangle with a left-to-right blend from one color to another.
func (c *Canvas) Gradient(x, y, w, h float64, from, to Color) {
	r1, g1, b1 := from.RGB()
	r2, g2, b2 := to.RGB()
	c.pdf.LinearGradient(x, y, w, h, r1, g1, b1, r2, g2, b2, 0, 0.5, 1, 0.5)
	c.emit(Op{Kind: OpGradient, X: x, Y: y, W: w, H: h, Color: from})
}

// Dot paints a filled circle centered on (x, y).
func (c *Canvas) Dot(x, y, radius float64, col Color) {
	c.pdf.SetFillColor(col.RGB())
	c.pdf.Circle(x, y, radius, "F")
	c.emit(Op{Kind: OpDot, X: x, Y: y, W: 2 * radius, H: 2 * radius, Color: col})
}

// Image places a registered image with its top-left corner at (x, y),
// scaled to height h. Unregistered names are skipped and reported as false.
func (c *Canvas) Image(name string, x, y, h float64) bool {
	if !c.images[name] {
		return false
	}
	info := c.pdf.GetImageInfo(name)
	w := 0.0
	if info != nil && info.Height() > 0 {
		w = h * info.Width() / info.Height()
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
	c.emit(Op{Kind: OpImage, Text: name, X: x, Y: y, W: w, H: h})
	return true
}
