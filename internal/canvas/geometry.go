package canvas

// Fixed A4 page geometry in points.
const (
	PageWidth    = 595.28
	PageHeight   = 841.89
	MarginLeft   = 60.0
	MarginRight  = 60.0
	MarginTop    = 80.0
	MarginBottom = 70.0
	ContentWidth = PageWidth - MarginLeft - MarginRight

	// BodyTop is where flowed content starts on a fresh page.
	BodyTop = MarginTop + 10

	// BodyBottom is the lowest Y flowed content may reach.
	BodyBottom = PageHeight - MarginBottom
)

// lineSpacing is the ratio of line height to font size.
const lineSpacing = 1.15

// LineHeight returns the height of one text line at the given size.
func LineHeight(size float64) float64 {
	return size * lineSpacing
}

// Cursor is the layout position: a 0-based page index and a Y offset
// from the top of that page.
type Cursor struct {
	Page int
	Y    float64
}

// Remaining returns the vertical space left above the bottom margin.
func (c Cursor) Remaining() float64 {
	return BodyBottom - c.Y
}

// Fits reports whether h more units fit above the bottom margin.
func (c Cursor) Fits(h float64) bool {
	return c.Y+h <= BodyBottom
}
