package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-kbpdf/internal/canvas"
)

// DefaultCodeStyle is the chroma style used when none is named.
const DefaultCodeStyle = "github"

// Span is a run of code text in one color.
type Span struct {
	Text  string
	Color canvas.Color
}

// Highlighter colors code lines by token type using a chroma style.
// Lines are tokenized one at a time, so constructs spanning several lines
// (block comments, raw strings) are colored per line only.
//
// A nil *Highlighter draws every line in the body text color.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a Highlighter for the named chroma style. Unknown
// names fall back to chroma's default style.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultCodeStyle
	}
	return &Highlighter{style: styles.Get(styleName)}
}

// Spans splits line into colored runs for the given fence language. When
// the language is unknown or empty the whole line is one plain span.
func (h *Highlighter) Spans(lang, line string) []Span {
	plain := []Span{{Text: line, Color: colorDarkGray}}
	if h == nil || lang == "" || line == "" {
		return plain
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return plain
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, line)
	if err != nil {
		return plain
	}

	var spans []Span
	for tok := it(); tok != chroma.EOF; tok = it() {
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		spans = append(spans, Span{Text: text, Color: h.color(tok.Type)})
	}
	if len(spans) == 0 {
		return plain
	}
	return spans
}

func (h *Highlighter) color(t chroma.TokenType) canvas.Color {
	entry := h.style.Get(t)
	if !entry.Colour.IsSet() {
		return colorDarkGray
	}
	return canvas.Color{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue()}
}
