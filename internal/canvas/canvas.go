// Package canvas wraps a gofpdf document as a page-oriented drawing surface
// with fixed A4 geometry.
//
// The canvas never paginates on its own: automatic page breaks are disabled
// and every page is created by an explicit AddPage call. Earlier pages can be
// revisited with Patch, which restores the previous focus afterwards, so a
// back-patch pass cannot grow the document.
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ErrBackend indicates the underlying PDF writer reported an error.
var ErrBackend = errors.New("pdf backend error")

// Align is horizontal text alignment within a box.
type Align int

// Alignments.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// baselineRatio places the baseline below the top of a text line.
const baselineRatio = 0.85

// Canvas is a multi-page drawing surface.
type Canvas struct {
	pdf      *gofpdf.Fpdf
	faces    map[Face]faceSpec
	images   map[string]bool
	page     int
	observer func(Op)

	// fontStale is set when focus moves to an existing page whose content
	// stream has not seen the current font.
	fontStale bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithObserver registers fn to receive every drawing operation.
func WithObserver(fn func(Op)) Option {
	return func(c *Canvas) {
		c.observer = fn
	}
}

// New creates an empty canvas with no pages.
func New(opts ...Option) *Canvas {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(MarginLeft, MarginTop, MarginRight)
	pdf.SetAutoPageBreak(false, MarginBottom)
	pdf.SetCatalogSort(true)

	c := &Canvas{
		pdf:    pdf,
		faces:  make(map[Face]faceSpec, len(builtinFaces)),
		images: make(map[string]bool),
		page:   -1,
	}
	for face, spec := range builtinFaces {
		c.faces[face] = spec
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterFont loads a TrueType font for face. On failure the face keeps
// its built-in fallback and the backend error state is cleared.
func (c *Canvas) RegisterFont(face Face, data []byte) (err error) {
	if !isTrueType(data) {
		return fmt.Errorf("%w: not a TrueType font", ErrBackend)
	}
	defer func() {
		if r := recover(); r != nil {
			c.pdf.ClearError()
			err = fmt.Errorf("%w: font parser: %v", ErrBackend, r)
		}
	}()

	family := fmt.Sprintf("kbface%d", face)
	c.pdf.AddUTF8FontFromBytes(family, "", data)
	if c.pdf.Err() {
		err = c.pdf.Error()
		c.pdf.ClearError()
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	// The parser reports some failures only by leaving the font out.
	if desc := c.pdf.GetFontDesc(family, ""); desc.Ascent == 0 && desc.Descent == 0 {
		return fmt.Errorf("%w: font tables unreadable", ErrBackend)
	}
	c.faces[face] = faceSpec{family: family, utf8: true}
	return nil
}

// isTrueType checks the sfnt version tag of a font file.
func isTrueType(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	tag := string(data[:4])
	return tag == "\x00\x01\x00\x00" || tag == "true"
}

// RegisterImage loads an image under name. imageType is "PNG", "JPG" or "GIF".
func (c *Canvas) RegisterImage(name string, data []byte, imageType string) error {
	c.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if c.pdf.Err() {
		err := c.pdf.Error()
		c.pdf.ClearError()
		return fmt.Errorf("%w: image %q: %v", ErrBackend, name, err)
	}
	c.images[name] = true
	return nil
}

// HasImage reports whether an image was registered under name.
func (c *Canvas) HasImage(name string) bool {
	return c.images[name]
}

// SetInfo sets document metadata. created fixes the creation and
// modification dates so that identical input renders identical bytes.
func (c *Canvas) SetInfo(title, author, creator string, created time.Time) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetAuthor(author, true)
	c.pdf.SetCreator(creator, true)
	c.pdf.SetCreationDate(created)
	c.pdf.SetModificationDate(created)
}

// AddPage appends a page and focuses it. Returns its 0-based index.
func (c *Canvas) AddPage() int {
	if n := c.pdf.PageCount(); n > 0 && c.page != n-1 {
		c.pdf.SetPage(n)
	}
	c.pdf.AddPage()
	c.page = c.pdf.PageNo() - 1
	c.fontStale = false
	c.emit(Op{Kind: OpPage})
	return c.page
}

// PageCount returns the number of pages created so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Page returns the 0-based index of the focused page, or -1 before the first page.
func (c *Canvas) Page() int {
	return c.page
}

// Focus switches drawing to an existing page. Returns false if index is out of range.
func (c *Canvas) Focus(index int) bool {
	if index < 0 || index >= c.pdf.PageCount() {
		return false
	}
	if index != c.page {
		c.pdf.SetPage(index + 1)
		c.page = index
		c.fontStale = true
	}
	return true
}

// Patch runs fn with page index focused, then restores the previous focus.
// It never creates pages. Returns false if index is out of range.
func (c *Canvas) Patch(index int, fn func()) bool {
	prev := c.page
	if !c.Focus(index) {
		return false
	}
	fn()
	c.Focus(prev)
	return true
}

// Err returns the backend error state, if any.
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return fmt.Errorf("%w: %v", ErrBackend, c.pdf.Error())
	}
	return nil
}

// WriteTo finalizes the document and writes it to w. Focus moves to the
// last page first so finalization does not append a page.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if n := c.pdf.PageCount(); n > 0 {
		c.Focus(n - 1)
	}
	cw := &countingWriter{w: w}
	err := c.pdf.Output(cw)
	return cw.n, err
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// useFont selects f on the backend and returns its face spec.
func (c *Canvas) useFont(f Font) faceSpec {
	spec, ok := c.faces[f.Face]
	if !ok {
		spec = builtinFaces[FaceBody]
	}
	c.pdf.SetFont(spec.family, spec.style, f.Size)
	if c.fontStale {
		// SetFont is a no-op when nothing changed, so force the size
		// operator into this page's stream.
		c.pdf.SetFontSize(f.Size)
		c.fontStale = false
	}
	return spec
}

func (c *Canvas) emit(op Op) {
	if c.observer == nil {
		return
	}
	op.Page = c.page
	c.observer(op)
}
