package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-kbpdf/internal/canvas"
	"github.com/alnah/go-kbpdf/internal/mdblock"
)

func newTestFlow() (*Flow, *canvas.Canvas, *recorder) {
	c, rec := newRecordedCanvas()
	c.AddPage()
	c.AddPage()
	return NewFlow(c, &Options{}), c, rec
}

// ---------------------------------------------------------------------------
// TestFlowBreakPolicy - Space thresholds before each block
// ---------------------------------------------------------------------------

func TestFlowBreakPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining float64
		block     mdblock.Block
		wantBreak bool
	}{
		{"level-2 heading with room stays", 61, mdblock.Block{Kind: mdblock.KindHeading2, Text: "H"}, false},
		{"level-2 heading short of 60 breaks", 59, mdblock.Block{Kind: mdblock.KindHeading2, Text: "H"}, true},
		{"level-3 heading short of 60 stays", 59, mdblock.Block{Kind: mdblock.KindHeading3, Text: "H"}, false},
		{"paragraph with 26 stays", 26, mdblock.Block{Kind: mdblock.KindParagraph, Text: "p"}, false},
		{"paragraph short of 25 breaks", 24, mdblock.Block{Kind: mdblock.KindParagraph, Text: "p"}, true},
		{"blank short of 25 breaks", 24, mdblock.Block{Kind: mdblock.KindBlank}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, c, _ := newTestFlow()
			f.cursor.Y = canvas.BodyBottom - tt.remaining
			before := c.PageCount()

			f.Block(tt.block)

			gotBreak := c.PageCount() > before
			if gotBreak != tt.wantBreak {
				t.Errorf("break = %v, want %v", gotBreak, tt.wantBreak)
			}
			if gotBreak && f.Cursor().Page != before {
				t.Errorf("cursor page = %d, want %d", f.Cursor().Page, before)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFlowNewPage - Fresh pages get a header band and a reset cursor
// ---------------------------------------------------------------------------

func TestFlowNewPage(t *testing.T) {
	t.Parallel()

	f, c, rec := newTestFlow()
	if f.Cursor() != (canvas.Cursor{Page: 2, Y: canvas.BodyTop}) {
		t.Errorf("start cursor = %+v, want page 2 at body top", f.Cursor())
	}

	f.cursor.Y = canvas.BodyBottom - 1
	f.Block(mdblock.Block{Kind: mdblock.KindParagraph, Text: "next"})

	if c.PageCount() != 4 {
		t.Fatalf("PageCount() = %d, want 4", c.PageCount())
	}
	var bands int
	for _, op := range rec.fills(colorPurple) {
		if op.Page == 3 && op.H == headerHeight {
			bands++
		}
	}
	if bands != 1 {
		t.Errorf("header bands on new page = %d, want 1", bands)
	}
	ops := rec.texts(equals("next"))
	if len(ops) != 1 || ops[0].Page != 3 || ops[0].Y != canvas.BodyTop {
		t.Errorf("paragraph ops = %+v, want one at top of page 3", ops)
	}
}

// ---------------------------------------------------------------------------
// TestFlowBlankCollapse - Repeated blank lines give one gap
// ---------------------------------------------------------------------------

func TestFlowBlankCollapse(t *testing.T) {
	t.Parallel()

	layout := func(md string) float64 {
		f, _, _ := newTestFlow()
		f.Draw(mdblock.Classify(md))
		return f.Cursor().Y
	}

	single := layout("First.\n\nSecond.")
	double := layout("First.\n\n\nSecond.")
	many := layout("First.\n\n\n\n\n\nSecond.")

	if single != double || single != many {
		t.Errorf("cursor after blanks: single=%v double=%v many=%v, want equal", single, double, many)
	}
}

// ---------------------------------------------------------------------------
// TestFlowLongParagraph - Text continues on a new page line by line
// ---------------------------------------------------------------------------

func TestFlowLongParagraph(t *testing.T) {
	t.Parallel()

	f, c, rec := newTestFlow()
	f.Block(mdblock.Block{Kind: mdblock.KindParagraph, Text: strings.Repeat("word ", 3000)})

	if c.PageCount() < 4 {
		t.Fatalf("PageCount() = %d, want the paragraph to span pages", c.PageCount())
	}
	for _, op := range rec.texts(func(s string) bool { return strings.HasPrefix(s, "word") }) {
		if op.Y+op.H > canvas.BodyBottom+bodyLineGap {
			t.Errorf("line on page %d at Y=%v runs past the body", op.Page, op.Y)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFlowBlocks - Per-kind drawing
// ---------------------------------------------------------------------------

func TestFlowBlocks(t *testing.T) {
	t.Parallel()

	t.Run("inline markup is stripped", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Block(mdblock.Block{Kind: mdblock.KindParagraph, Text: "a **bold** [link](http://x)"})
		if len(rec.texts(equals("a bold link"))) != 1 {
			t.Error("stripped paragraph not drawn")
		}
	})

	t.Run("bullet dot is indented per level", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Block(mdblock.Block{Kind: mdblock.KindBullet, Text: "top"})
		f.Block(mdblock.Block{Kind: mdblock.KindBullet, Text: "nested", Indent: 2})

		var dots []canvas.Op
		for _, op := range rec.ops {
			if op.Kind == canvas.OpDot {
				dots = append(dots, op)
			}
		}
		if len(dots) != 2 {
			t.Fatalf("got %d dots, want 2", len(dots))
		}
		if diff := dots[1].X - dots[0].X; diff != 2*bulletStep {
			t.Errorf("nested dot offset = %v, want %v", diff, 2*bulletStep)
		}
	})

	t.Run("deeply nested bullet keeps a text column", func(t *testing.T) {
		t.Parallel()

		f, c, rec := newTestFlow()
		start := c.PageCount()
		f.Draw(mdblock.Classify(strings.Repeat(" ", 200) + "- deep item"))

		got := rec.texts(equals("deep item"))
		if len(got) != 1 {
			t.Fatalf("got %d text ops for the item, want 1", len(got))
		}
		if right := got[0].X + got[0].W; right > canvas.MarginLeft+canvas.ContentWidth {
			t.Errorf("item ends at %v, past the right margin", right)
		}
		if c.PageCount() != start {
			t.Errorf("PageCount() = %d, want %d", c.PageCount(), start)
		}
	})

	t.Run("numbered items lose their ordinal", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Draw(mdblock.Classify("1. first\n2. second"))
		if len(rec.texts(equals("• first"))) != 1 || len(rec.texts(equals("• second"))) != 1 {
			t.Error("numbered items not drawn with a generic marker")
		}
		if len(rec.texts(func(s string) bool { return strings.Contains(s, "1.") })) != 0 {
			t.Error("ordinal drawn")
		}
	})

	t.Run("code lines get one strip each", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Draw(mdblock.Classify("```\n# not a heading\n\n| a | b |\n```"))
		if got := len(rec.fills(colorCodeStrip)); got != 3 {
			t.Errorf("code strips = %d, want 3", got)
		}
		if len(rec.texts(equals("# not a heading"))) != 1 {
			t.Error("code line not drawn verbatim")
		}
	})

	t.Run("blockquote bar spans every line", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Block(mdblock.Block{Kind: mdblock.KindBlockquote, Text: strings.Repeat("quoted ", 120)})
		bars := rec.fills(colorOrange)
		lines := rec.texts(func(s string) bool { return strings.HasPrefix(s, "quoted") })
		if len(bars) != len(lines) || len(lines) < 2 {
			t.Errorf("bars = %d, lines = %d, want equal and several", len(bars), len(lines))
		}
	})

	t.Run("table with no columns is skipped", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		before := f.Cursor()
		f.Block(mdblock.Block{Kind: mdblock.KindTable, Table: &mdblock.Table{}})
		if f.Cursor() != before {
			t.Errorf("cursor moved from %+v to %+v", before, f.Cursor())
		}
		if n := len(rec.fills(colorPurple)); n != 1 {
			t.Errorf("purple fills = %d, want only the header band", n)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFlowTable - Table rows, shading and continuation
// ---------------------------------------------------------------------------

func TestFlowTable(t *testing.T) {
	t.Parallel()

	t.Run("ragged row renders empty cells", func(t *testing.T) {
		t.Parallel()

		f, _, rec := newTestFlow()
		f.Draw(mdblock.Classify("| A | B | C |\n|---|---|---|\n| 1 |"))
		if len(rec.texts(equals("1"))) != 1 {
			t.Error("first cell not drawn")
		}
		if got := len(rec.texts(equals(""))); got != 2 {
			t.Errorf("empty cells drawn = %d, want 2", got)
		}
	})

	t.Run("oversized table splits with global shading", func(t *testing.T) {
		t.Parallel()

		var md strings.Builder
		md.WriteString("| Header |\n|---|\n")
		const rows = 70
		for i := range rows {
			fmt.Fprintf(&md, "| row %d |\n", i)
		}

		f, c, rec := newTestFlow()
		f.Draw(mdblock.Classify(md.String()))

		if got := len(rec.texts(equals("Header"))); got != 1 {
			t.Errorf("header drawn %d times, want 1", got)
		}

		shaded := make(map[canvas.Cursor]bool)
		for _, op := range rec.fills(colorBeige) {
			shaded[canvas.Cursor{Page: op.Page, Y: op.Y + tableCellPad}] = true
		}

		pages := make(map[int]bool)
		for i := range rows {
			ops := rec.texts(equals(fmt.Sprintf("row %d", i)))
			if len(ops) != 1 {
				t.Fatalf("row %d drawn %d times", i, len(ops))
			}
			op := ops[0]
			pages[op.Page] = true
			if got, want := shaded[canvas.Cursor{Page: op.Page, Y: op.Y}], i%2 == 0; got != want {
				t.Errorf("row %d on page %d shaded = %v, want %v", i, op.Page, got, want)
			}
			if op.Y+tableRowHeight-tableCellPad > canvas.BodyBottom {
				t.Errorf("row %d runs past the body on page %d", i, op.Page)
			}
		}
		if len(pages) < 2 {
			t.Errorf("table spans %d pages, want at least 2", len(pages))
		}
		if c.PageCount() < 4 {
			t.Errorf("PageCount() = %d, want at least 4", c.PageCount())
		}

		var frames int
		for _, op := range rec.ops {
			if op.Kind == canvas.OpStroke {
				frames++
			}
		}
		if frames != len(pages) {
			t.Errorf("frames = %d, want one per page segment (%d)", frames, len(pages))
		}
	})

	t.Run("table that cannot start starts on a new page", func(t *testing.T) {
		t.Parallel()

		f, c, rec := newTestFlow()
		f.cursor.Y = canvas.BodyBottom - 3*tableRowHeight
		f.table(&mdblock.Table{Headers: []string{"H"}, Rows: [][]string{{"1"}, {"2"}, {"3"}, {"4"}}})

		ops := rec.texts(equals("H"))
		if len(ops) != 1 || ops[0].Page != c.PageCount()-1 || ops[0].Page == 2 {
			t.Errorf("header ops = %+v, want on a new page", ops)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHighlighter - Code token coloring
// ---------------------------------------------------------------------------

func TestHighlighter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		h         *Highlighter
		lang      string
		line      string
		wantPlain bool
	}{
		{"nil highlighter is plain", nil, "go", "func main() {}", true},
		{"no language is plain", NewHighlighter(""), "", "func main() {}", true},
		{"unknown language is plain", NewHighlighter(""), "no-such-lang", "x := 1", true},
		{"go is tokenized", NewHighlighter("monokai"), "go", "func main() { return }", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spans := tt.h.Spans(tt.lang, tt.line)
			var joined strings.Builder
			for _, s := range spans {
				joined.WriteString(s.Text)
			}
			if joined.String() != tt.line {
				t.Errorf("spans join to %q, want %q", joined.String(), tt.line)
			}
			if plain := len(spans) == 1 && spans[0].Color == colorDarkGray; plain != tt.wantPlain {
				t.Errorf("plain = %v, want %v (spans %+v)", plain, tt.wantPlain, spans)
			}
		})
	}
}
