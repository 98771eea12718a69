package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Flag parsing and positional arguments
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("all groups parsed", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"-c", "team", "-q", "-o", "out/", "-w", "3",
			"--title", "Refunds", "--category", "Payments",
			"--approved", "auto", "--date-format", "iso",
			"--asset-path", "./brand", "--body-font", "Inter-Regular",
			"--primary-logo", "savi_white",
			"--toc-title", "Contents", "--toc-subsections",
			"--caption", "Internal", "--code-style", "github",
			"docs/",
		}
		f, positional, err := parseConvertFlags(args, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}

		if f.common.config != "team" || !f.common.quiet || f.common.verbose {
			t.Errorf("common = %+v", f.common)
		}
		if f.output != "out/" || f.workers != 3 {
			t.Errorf("output = %q, workers = %d", f.output, f.workers)
		}
		want := documentFlags{title: "Refunds", category: "Payments", approved: "auto", dateFormat: "iso"}
		if f.document != want {
			t.Errorf("document = %+v, want %+v", f.document, want)
		}
		if f.assets.assetPath != "./brand" || f.assets.bodyFont != "Inter-Regular" || f.assets.primaryLogo != "savi_white" {
			t.Errorf("assets = %+v", f.assets)
		}
		if f.toc.title != "Contents" || !f.toc.subsections {
			t.Errorf("toc = %+v", f.toc)
		}
		if f.caption != "Internal" || f.codeStyle != "github" {
			t.Errorf("caption = %q, codeStyle = %q", f.caption, f.codeStyle)
		}
		if len(positional) != 1 || positional[0] != "docs/" {
			t.Errorf("positional = %v, want [docs/]", positional)
		}
	})

	t.Run("flags after positional", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseConvertFlags([]string{"a.md", "-v"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if !f.common.verbose || len(positional) != 1 {
			t.Errorf("verbose = %v, positional = %v", f.common.verbose, positional)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseConvertFlags([]string{"--page-size", "a4"}, &bytes.Buffer{}); err == nil {
			t.Error("parseConvertFlags() error = nil, want unknown flag error")
		}
	})

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, _, err := parseConvertFlags([]string{"--help"}, &buf)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("parseConvertFlags() error = %v, want ErrHelp", err)
		}
		if !strings.Contains(buf.String(), "Usage: kbpdf convert") {
			t.Errorf("usage not printed, got %q", buf.String())
		}
	})
}
