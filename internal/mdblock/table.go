package mdblock

import (
	"regexp"
	"strings"
)

// separatorPattern matches a table separator row such as |---|:--:|.
var separatorPattern = regexp.MustCompile(`^\|[\s:]*-+[\s:]*(\|[\s:]*-+[\s:]*)*\|$`)

// Table is a parsed pipe table. Every row has len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Columns returns the header column count.
func (t *Table) Columns() int {
	if t == nil {
		return 0
	}
	return len(t.Headers)
}

// ParseTableRow splits a pipe-delimited row into trimmed cells.
// The empty fields produced by the leading and trailing pipe are dropped.
func ParseTableRow(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) < 2 {
		return nil
	}
	fields = fields[1 : len(fields)-1]
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}

// IsTableSeparator reports whether line is a header separator row.
func IsTableSeparator(line string) bool {
	return separatorPattern.MatchString(strings.TrimSpace(line))
}

// isTableStart reports whether a trimmed line opens a table: it starts and
// ends with a pipe and has at least one more pipe after the first.
func isTableStart(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") &&
		strings.HasSuffix(trimmed, "|") &&
		strings.Contains(trimmed[1:], "|")
}

// isTableLine reports whether a trimmed line continues a table.
func isTableLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// ParseTable converts contiguous table lines into a Table.
//
// The first line is the header. The second line is taken to be the separator
// and dropped even when it is not well formed. Any later separator-shaped
// line is dropped too. Short rows are padded with empty cells and long rows
// are cut to the header width. Returns nil when fewer than two lines are given.
func ParseTable(lines []string) *Table {
	if len(lines) < 2 {
		return nil
	}

	t := &Table{Headers: ParseTableRow(lines[0])}
	cols := len(t.Headers)

	for _, line := range lines[2:] {
		if IsTableSeparator(line) {
			continue
		}
		t.Rows = append(t.Rows, normalizeRow(ParseTableRow(line), cols))
	}

	return t
}

// normalizeRow pads or cuts cells to exactly cols entries.
func normalizeRow(cells []string, cols int) []string {
	row := make([]string, cols)
	copy(row, cells)
	return row
}
