package canvas

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Face is a logical typeface role.
type Face int

// Typeface roles. Each falls back to a built-in face when no font is loaded.
const (
	FaceHeading Face = iota
	FaceBody
	FaceMono
)

// Font is a face at a size in points.
type Font struct {
	Face Face
	Size float64
}

// faceSpec is the gofpdf family/style pair backing a Face.
type faceSpec struct {
	family string
	style  string
	utf8   bool
}

// builtinFaces are the core PDF fonts used when no font file is registered.
var builtinFaces = map[Face]faceSpec{
	FaceHeading: {family: "Helvetica", style: "B"},
	FaceBody:    {family: "Helvetica"},
	FaceMono:    {family: "Courier"},
}

// encode prepares text for the given face. Core fonts only cover
// Windows-1252; runes outside it are drawn as '?'.
func encode(spec faceSpec, s string) string {
	s = norm.NFC.String(s)
	if spec.utf8 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

// Width returns the rendered width of text in f.
func (c *Canvas) Width(text string, f Font) float64 {
	spec := c.useFont(f)
	return c.pdf.GetStringWidth(encode(spec, text))
}

// Fit cuts text from the end until it is no wider than width.
func (c *Canvas) Fit(text string, f Font, width float64) string {
	if c.Width(text, f) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if c.Width(string(runes), f) <= width {
			break
		}
	}
	return string(runes)
}

// Wrap breaks text into lines no wider than width, at spaces where
// possible. Words wider than a line are split between runes. The result
// always has at least one line. A width of zero or less returns the text
// as a single line.
func (c *Canvas) Wrap(text string, f Font, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if c.Width(candidate, f) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		for word != "" && c.Width(word, f) > width {
			head := c.Fit(word, f, width)
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
