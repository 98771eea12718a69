package pipeline

import "github.com/alnah/go-kbpdf/internal/canvas"

// Brand palette.
var (
	colorPurple      = canvas.Hex("#4B007C")
	colorViolet      = canvas.Hex("#AD00FD")
	colorLilac       = canvas.Hex("#AE91FF")
	colorOrange      = canvas.Hex("#FF5F00")
	colorBeige       = canvas.Hex("#F8F4F2")
	colorWhite       = canvas.Hex("#FFFFFF")
	colorMediumGray  = canvas.Hex("#666666")
	colorDarkGray    = canvas.Hex("#333333")
	colorCodeStrip   = canvas.Hex("#F5F5F0")
	colorTableBorder = canvas.Hex("#E0E0E0")
	colorCoverRule   = canvas.Hex("#D0D0D0")
)

// Page break thresholds, in layout units of space required below the cursor.
const (
	headingBreakSpace = 60.0 // before a level-2 heading
	blockBreakSpace   = 25.0 // before any other block
)

// Header band.
const (
	headerHeight        = 55.0
	headerRuleHeight    = 3.0
	primaryLogoY        = 12.0
	primaryLogoHeight   = 30.0
	secondaryLogoY      = 17.0
	secondaryLogoHeight = 22.0
	secondaryLogoInset  = 70.0
)

// Body text.
const (
	bodySize    = 10.5
	bodyLineGap = 3.0
)

// headingStyle describes one heading level.
type headingStyle struct {
	size   float64
	color  canvas.Color
	before float64 // gap above, skipped after a blank block except for level 1
	after  float64
	bar    float64 // accent bar width, 0 for none
}

var headingStyles = map[int]headingStyle{
	1: {size: 22, color: colorPurple, before: 6, after: 14, bar: 60},
	2: {size: 17, color: colorPurple, before: 12, after: 10, bar: 50},
	3: {size: 13.5, color: colorPurple, before: 7, after: 5},
	4: {size: 11.5, color: colorLilac, before: 4, after: 3},
}

// Gaps after blocks.
const (
	paragraphGap  = 5.0
	boldLineGap   = 4.0
	bulletGap     = 2.0
	quoteGap      = 4.0
	blankGap      = 4.0
	ruleGapBefore = 6.0
	ruleGapAfter  = 10.0
	tableGap      = 4.0
	accentBarGap  = 2.0
	accentBarSize = 2.0
)

// List and quote geometry.
const (
	bulletInset    = 10.0
	bulletStep     = 15.0 // per indent level
	bulletTextGap  = 12.0
	bulletTextTrim = 22.0
	bulletRadius   = 2.0
	bulletMinText  = 120.0 // narrowest text column beside a nested bullet
	numberedTrim   = 28.0
	quoteBarInset  = 4.0
	quoteBarWidth  = 3.0
	quoteTextInset = 16.0
	quoteTextTrim  = 20.0
)

// maxBulletIndent keeps deeply nested bullets at least bulletMinText wide.
const maxBulletIndent = canvas.ContentWidth - bulletTextTrim - bulletMinText

// Code lines.
const (
	codeSize       = 9.0
	codeStripH     = 13.0
	codeTextInset  = 8.0
	codeTextOffset = 2.0
	codeTabWidth   = 4
)

// Tables.
const (
	tableRowHeight  = 22.0
	tableCellPad    = 6.0
	tableFontSize   = 9.0
	tableMinRows    = 4
	tableRuleWidth  = 0.5
	tableFrameWidth = 1.0
	tableAfterGap   = 5.0
)

// TOC page.
const (
	tocTitleSize  = 20.0
	tocTitleGap   = 20.0
	tocEntrySize  = 11.0
	tocSubSize    = 9.5
	tocSubIndent  = 20.0
	tocNumberRoom = 40.0
	tocEntryGap   = 3.0
	tocSubGap     = 1.5
)

// Footer.
const (
	footerOffset   = 45.0 // from the bottom edge
	footerTextDrop = 8.0
	footerSize     = 8.0
)

// Cover page.
const (
	coverLabel       = "KNOWLEDGE BASE ARTICLE"
	coverLabelY      = 200.0
	coverLabelSize   = 11.0
	coverTitleSize   = 38.0
	coverBarWidth    = 160.0
	coverBarHeight   = 4.0
	coverMetaY       = 560.0
	coverMetaLabel   = 10.0
	coverMetaValue   = 14.0
	coverMetaFirst   = 16.0
	coverMetaSecond  = 60.0
	coverBandOffset  = 100.0 // from the bottom edge
	coverBandHeight  = 6.0
	coverTitleBottom = coverMetaY - 30
)

func headingFont(size float64) canvas.Font { return canvas.Font{Face: canvas.FaceHeading, Size: size} }
func bodyFont(size float64) canvas.Font    { return canvas.Font{Face: canvas.FaceBody, Size: size} }
