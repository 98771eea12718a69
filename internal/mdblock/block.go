// Package mdblock classifies a constrained markdown dialect into a flat
// sequence of typed blocks.
//
// Only headings (levels 1-4), bullets, numbered items, block quotes,
// horizontal rules, fenced code, pipe tables, bold-only lines and plain
// paragraphs are recognized. Everything else is a paragraph. Inline markup
// is never interpreted here; see Plain for the text the renderer draws.
package mdblock

// Kind identifies the type of a classified block.
type Kind int

// Block kinds, in no particular priority order.
const (
	KindParagraph Kind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindBullet
	KindNumbered
	KindRule
	KindBlank
	KindBoldLine
	KindCode
	KindTable
	KindBlockquote
)

var kindNames = map[Kind]string{
	KindParagraph:  "paragraph",
	KindHeading1:   "heading1",
	KindHeading2:   "heading2",
	KindHeading3:   "heading3",
	KindHeading4:   "heading4",
	KindBullet:     "bullet",
	KindNumbered:   "numbered",
	KindRule:       "rule",
	KindBlank:      "blank",
	KindBoldLine:   "bold-line",
	KindCode:       "code",
	KindTable:      "table",
	KindBlockquote: "blockquote",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// HeadingLevel returns 1-4 for heading kinds and 0 otherwise.
func (k Kind) HeadingLevel() int {
	switch k {
	case KindHeading1:
		return 1
	case KindHeading2:
		return 2
	case KindHeading3:
		return 3
	case KindHeading4:
		return 4
	}
	return 0
}

// Block is one classified unit of markdown content.
// Blocks are produced once and consumed in document order.
type Block struct {
	Kind   Kind
	Text   string // content with the block marker removed; raw line for code
	Indent int    // nesting level for bullets, 0 otherwise
	Lang   string // fence info string for code lines, may be empty
	Table  *Table // set only for KindTable
}
