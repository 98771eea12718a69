package canvas

// OpKind identifies a drawing operation.
type OpKind int

// Drawing operations reported to an observer.
const (
	OpPage OpKind = iota
	OpText
	OpFill
	OpStroke
	OpLine
	OpGradient
	OpDot
	OpImage
)

var opNames = map[OpKind]string{
	OpPage:     "page",
	OpText:     "text",
	OpFill:     "fill",
	OpStroke:   "stroke",
	OpLine:     "line",
	OpGradient: "gradient",
	OpDot:      "dot",
	OpImage:    "image",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return "unknown"
}

// Op records one drawing call. Page is the 0-based index of the page it
// landed on. For OpText, Y is the top of the line and Text is the string
// actually drawn after fitting.
type Op struct {
	Page  int
	Kind  OpKind
	Text  string
	X, Y  float64
	W, H  float64
	Font  Font
	Color Color
}
