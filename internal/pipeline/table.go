package pipeline

import (
	"github.com/alnah/go-kbpdf/internal/canvas"
	"github.com/alnah/go-kbpdf/internal/mdblock"
)

// table draws a grid with equal column widths. The header row is drawn
// once; rows that do not fit continue on a new page without it. Shading
// alternates on the global row index so it carries across pages. Cell text
// is cut to the column width, never wrapped.
func (f *Flow) table(t *mdblock.Table) {
	cols := t.Columns()
	if cols == 0 {
		return
	}
	f.cursor.Y += tableGap

	colWidth := canvas.ContentWidth / float64(cols)
	total := tableRowHeight * float64(1+len(t.Rows))
	if !f.cursor.Fits(min(total, tableRowHeight*tableMinRows)) {
		f.newPage()
	}

	top := f.cursor.Y
	f.c.FillRect(canvas.MarginLeft, top, canvas.ContentWidth, tableRowHeight, colorPurple)
	f.row(t.Headers, colWidth, headingFont(tableFontSize), colorWhite, false)

	for r, cells := range t.Rows {
		if !f.cursor.Fits(tableRowHeight) {
			f.frame(top)
			f.newPage()
			top = f.cursor.Y
		}
		if r%2 == 0 {
			f.c.FillRect(canvas.MarginLeft, f.cursor.Y, canvas.ContentWidth, tableRowHeight, colorBeige)
		}
		bottom := f.cursor.Y + tableRowHeight
		f.c.Line(canvas.MarginLeft, bottom, canvas.MarginLeft+canvas.ContentWidth, bottom, tableRuleWidth, colorTableBorder)
		f.row(cells, colWidth, bodyFont(tableFontSize), colorDarkGray, true)
	}

	f.frame(top)
	f.cursor.Y += tableAfterGap + tableGap
}

// row draws one line of cells at the cursor and advances past it.
func (f *Flow) row(cells []string, colWidth float64, font canvas.Font, col canvas.Color, rules bool) {
	y := f.cursor.Y
	for i, cell := range cells {
		x := canvas.MarginLeft + float64(i)*colWidth
		if rules && i > 0 {
			f.c.Line(x, y, x, y+tableRowHeight, tableRuleWidth, colorTableBorder)
		}
		f.c.TextLine(mdblock.Plain(cell), x+tableCellPad, y+tableCellPad, colWidth-2*tableCellPad, font, col, canvas.AlignLeft)
	}
	f.cursor.Y += tableRowHeight
}

// frame outlines the part of the table drawn on the current page.
func (f *Flow) frame(top float64) {
	if f.cursor.Y <= top {
		return
	}
	f.c.StrokeRect(canvas.MarginLeft, top, canvas.ContentWidth, f.cursor.Y-top, tableFrameWidth, colorTableBorder)
}
