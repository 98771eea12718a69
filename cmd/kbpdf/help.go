package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: kbpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert knowledge-base articles to PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'kbpdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: kbpdf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown articles to paginated PDF with a cover, contents and footers.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cover:")
	fmt.Fprintln(w, "      --title <s>             Title (\"\" = front matter, then first H1, then file name)")
	fmt.Fprintln(w, "      --category <s>          Category line")
	fmt.Fprintln(w, "      --approved <s>          Approval date: ISO-8601 or \"auto\"")
	fmt.Fprintln(w, "      --date-format <s>       Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                              Presets (case-insensitive): iso, european, us, long, british")
	fmt.Fprintln(w, "                              Use [text] to escape literals: [Approved] D MMMM YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with fonts/*.ttf and img/*")
	fmt.Fprintln(w, "      --heading-font <name>   Heading font (default SohneBreit-Kraftig)")
	fmt.Fprintln(w, "      --body-font <name>      Body font (default Inter-Regular)")
	fmt.Fprintln(w, "      --mono-font <name>      Code font (default built-in Courier)")
	fmt.Fprintln(w, "      --primary-logo <name>   Left header logo (default ecommpay_white)")
	fmt.Fprintln(w, "      --secondary-logo <name> Right header logo (default savi_white)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --toc-title <s>         Contents page heading")
	fmt.Fprintln(w, "      --toc-subsections       Include level-3 headings in the contents")
	fmt.Fprintln(w, "      --caption <s>           Footer caption")
	fmt.Fprintln(w, "      --code-style <s>        Chroma style for code blocks (e.g. github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  KBPDF_CONFIG, KBPDF_INPUT_DIR, KBPDF_OUTPUT_DIR, KBPDF_ASSET_PATH,")
	fmt.Fprintln(w, "  KBPDF_CATEGORY, KBPDF_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front matter (title, category, approved) overrides flags for that file.")
}

// runHelp prints help for a command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: kbpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: kbpdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
