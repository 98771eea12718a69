package mdblock

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Precompiled patterns for line classification.
var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	blockquotePrefix = regexp.MustCompile(`^>\s?`)
	bulletPrefix     = regexp.MustCompile(`^[-*+]\s`)
	numberedPrefix   = regexp.MustCompile(`^\d+\.\s(.*)$`)
	boldLinePattern  = regexp.MustCompile(`^\*\*[^*]+\*\*$`)
)

// headingPrefixes is checked longest prefix first.
var headingPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"#### ", KindHeading4},
	{"### ", KindHeading3},
	{"## ", KindHeading2},
	{"# ", KindHeading1},
}

// fence opens and closes a code block.
const fence = "```"

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Classify splits markdown into blocks, line by line, in document order.
// It is pure over its input and never fails: anything unrecognized becomes
// a paragraph. Trailing blank blocks are discarded.
func Classify(markdown string) []Block {
	lines := strings.Split(NormalizeLineEndings(markdown), "\n")
	blocks := make([]Block, 0, len(lines))

	inCode := false
	lang := ""

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fence) {
			inCode = !inCode
			if inCode {
				lang = strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
			} else {
				lang = ""
			}
			i++
			continue
		}

		if inCode {
			blocks = append(blocks, Block{Kind: KindCode, Text: line, Lang: lang})
			i++
			continue
		}

		if isTableStart(trimmed) {
			tableLines := []string{trimmed}
			i++
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if !isTableLine(next) {
					break
				}
				tableLines = append(tableLines, next)
				i++
			}
			if t := ParseTable(tableLines); t != nil {
				blocks = append(blocks, Block{Kind: KindTable, Table: t})
			}
			continue
		}

		blocks = append(blocks, classifyLine(line, trimmed))
		i++
	}

	for len(blocks) > 0 && blocks[len(blocks)-1].Kind == KindBlank {
		blocks = blocks[:len(blocks)-1]
	}

	return blocks
}

// classifyLine classifies a single line outside code blocks and tables.
// First match wins.
func classifyLine(line, trimmed string) Block {
	if trimmed == "" {
		return Block{Kind: KindBlank}
	}

	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return Block{Kind: KindRule}
	}

	for _, h := range headingPrefixes {
		if strings.HasPrefix(trimmed, h.prefix) {
			return Block{Kind: h.kind, Text: trimmed[len(h.prefix):]}
		}
	}

	if loc := blockquotePrefix.FindStringIndex(trimmed); loc != nil {
		return Block{Kind: KindBlockquote, Text: trimmed[loc[1]:]}
	}

	if loc := bulletPrefix.FindStringIndex(trimmed); loc != nil {
		return Block{Kind: KindBullet, Text: trimmed[loc[1]:], Indent: leadingSpace(line) / 2}
	}

	if m := numberedPrefix.FindStringSubmatch(trimmed); m != nil {
		return Block{Kind: KindNumbered, Text: m[1]}
	}

	if boldLinePattern.MatchString(trimmed) {
		return Block{Kind: KindBoldLine, Text: strings.ReplaceAll(trimmed, "**", "")}
	}

	return Block{Kind: KindParagraph, Text: trimmed}
}

// leadingSpace counts whitespace characters before the first non-space.
func leadingSpace(line string) int {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(rest)])
}
