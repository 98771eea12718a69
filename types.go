package kbpdf

// Document info written into every PDF.
const (
	DocumentAuthor  = "Savi × ecommpay Knowledge Pipeline"
	DocumentCreator = "Savi Knowledge Pipeline"
)

// Metadata describes the article on the cover page.
type Metadata struct {
	Title      string // Required; the caller guarantees it is not empty
	Category   string // Optional
	ApprovedAt string // Optional: ISO-8601 date or timestamp, or "auto"
}

// Input is one article to render.
type Input struct {
	Markdown string
	Metadata Metadata
}

// TOCEntry is a heading listed on the contents page.
type TOCEntry struct {
	Text  string
	Level int // 2, or 3 with WithSubsectionsInTOC
	Page  int // 1-based page number
}

// Result describes a rendered document.
type Result struct {
	Pages int
	TOC   []TOCEntry
}

// FontNames names the TrueType fonts to load, without extension.
// An empty name keeps the built-in face.
type FontNames struct {
	Heading string
	Body    string
	Mono    string
}

// LogoNames names the header images to load, without extension.
// An empty name leaves that logo out.
type LogoNames struct {
	Primary   string // Left side of the header band
	Secondary string // Right side of the header band
}

// DefaultFontNames are the brand faces looked up in the asset directory.
var DefaultFontNames = FontNames{
	Heading: "SohneBreit-Kraftig",
	Body:    "Inter-Regular",
}

// DefaultLogoNames are the brand logos looked up in the asset directory.
var DefaultLogoNames = LogoNames{
	Primary:   "ecommpay_white",
	Secondary: "savi_white",
}
