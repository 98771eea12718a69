package yamlutil

import "strings"

// frontMatterDelim opens and closes a front matter block.
const frontMatterDelim = "---"

// SplitFrontMatter separates a leading YAML block fenced by "---" lines
// from the rest of a markdown document. ok is false, and body is content
// unchanged, when the document does not start with a closed block.
//
// A document starting with "---" that is never closed is left alone: the
// opening line then reads as a horizontal rule.
func SplitFrontMatter(content string) (front, body string, ok bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t\r") != frontMatterDelim {
		return "", content, false
	}

	var lines []string
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t\r") == frontMatterDelim {
			return strings.Join(lines, "\n"), rest, true
		}
		lines = append(lines, line)
	}
	return "", content, false
}

// ParseFrontMatter decodes the front matter of content into v and returns
// the remaining body. Documents without front matter leave v untouched.
// Unknown keys are ignored, since front matter is often shared with other
// tools.
func ParseFrontMatter(content string, v any) (string, error) {
	front, body, ok := SplitFrontMatter(content)
	if !ok {
		return content, nil
	}
	if strings.TrimSpace(front) == "" {
		return body, nil
	}
	if err := Unmarshal([]byte(front), v); err != nil {
		return content, err
	}
	return body, nil
}
