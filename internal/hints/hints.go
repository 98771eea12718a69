// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"slices"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level location that was searched.
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-kbpdf/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetPath returns hints for an unusable asset directory.
func ForAssetPath() string {
	return format("the asset directory must contain fonts/*.ttf and img/*.{png,jpg,gif,webp}")
}

// ForDateFormat returns hints listing the date presets and tokens.
func ForDateFormat(presets []string) string {
	sorted := slices.Clone(presets)
	slices.Sort(sorted)
	hints := []string{"tokens: YYYY YY MMMM MMM MM M DD D, [text] for literals"}
	if len(sorted) > 0 {
		hints = append(hints, "presets: "+strings.Join(sorted, ", "))
	}
	return formatHints(hints)
}

// ForApprovedDate returns a hint for an unparseable approval date.
func ForApprovedDate() string {
	return format(`use an ISO-8601 date such as 2025-03-03 or "auto"`)
}

// ForNoInput returns a hint when no markdown input was found.
func ForNoInput() string {
	return format("pass a .md file or directory, or set input.defaultDir in the config")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
