package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds cover metadata flags.
type documentFlags struct {
	title      string
	category   string
	approved   string
	dateFormat string
}

// assetFlags holds font and logo flags.
type assetFlags struct {
	assetPath     string
	headingFont   string
	bodyFont      string
	monoFont      string
	primaryLogo   string
	secondaryLogo string
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title       string
	subsections bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	document  documentFlags
	assets    assetFlags
	toc       tocFlags
	caption   string
	codeStyle string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds cover metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "article title (\"\" = front matter, then first H1)")
	fs.StringVar(&f.category, "category", "", "category shown on the cover")
	fs.StringVar(&f.approved, "approved", "", "approval date (ISO-8601 or \"auto\")")
	fs.StringVar(&f.dateFormat, "date-format", "", "approval date format (tokens or preset)")
}

// addAssetFlags adds font and logo flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with fonts/ and img/")
	fs.StringVar(&f.headingFont, "heading-font", "", "heading font name under fonts/")
	fs.StringVar(&f.bodyFont, "body-font", "", "body font name under fonts/")
	fs.StringVar(&f.monoFont, "mono-font", "", "code font name under fonts/")
	fs.StringVar(&f.primaryLogo, "primary-logo", "", "left header logo name under img/")
	fs.StringVar(&f.secondaryLogo, "secondary-logo", "", "right header logo name under img/")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "contents page heading")
	fs.BoolVar(&f.subsections, "toc-subsections", false, "list level-3 headings in the contents")
}

// parseConvertFlags parses flags for the convert command and returns the
// remaining positional arguments.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	f := &convertFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addTOCFlags(fs, &f.toc)
	fs.StringVar(&f.caption, "caption", "", "footer caption")
	fs.StringVar(&f.codeStyle, "code-style", "", "code highlighting style (\"\" = monochrome)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
