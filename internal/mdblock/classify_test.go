package mdblock

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestClassify - Line classification by first-match priority
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "heading, blank and paragraph",
			input: "# Title\n\nHello world.",
			want: []Block{
				{Kind: KindHeading1, Text: "Title"},
				{Kind: KindBlank},
				{Kind: KindParagraph, Text: "Hello world."},
			},
		},
		{
			name:  "heading levels checked longest prefix first",
			input: "#### four\n### three\n## two\n# one",
			want: []Block{
				{Kind: KindHeading4, Text: "four"},
				{Kind: KindHeading3, Text: "three"},
				{Kind: KindHeading2, Text: "two"},
				{Kind: KindHeading1, Text: "one"},
			},
		},
		{
			name:  "heading needs a space after hashes",
			input: "#nospace",
			want:  []Block{{Kind: KindParagraph, Text: "#nospace"}},
		},
		{
			name:  "five hashes is a paragraph",
			input: "##### deep",
			want:  []Block{{Kind: KindParagraph, Text: "##### deep"}},
		},
		{
			name:  "rules",
			input: "---\n***\n___",
			want: []Block{
				{Kind: KindRule},
				{Kind: KindRule},
				{Kind: KindRule},
			},
		},
		{
			name:  "blockquote with and without space",
			input: "> quoted\n>tight",
			want: []Block{
				{Kind: KindBlockquote, Text: "quoted"},
				{Kind: KindBlockquote, Text: "tight"},
			},
		},
		{
			name:  "bullets with indent",
			input: "- one\n  * two\n    + three\n     - odd",
			want: []Block{
				{Kind: KindBullet, Text: "one", Indent: 0},
				{Kind: KindBullet, Text: "two", Indent: 1},
				{Kind: KindBullet, Text: "three", Indent: 2},
				{Kind: KindBullet, Text: "odd", Indent: 2},
			},
		},
		{
			name:  "numbered items drop the ordinal and indent",
			input: "1. first\n  12. twelfth",
			want: []Block{
				{Kind: KindNumbered, Text: "first"},
				{Kind: KindNumbered, Text: "twelfth"},
			},
		},
		{
			name:  "bold line strips markers",
			input: "**Important**",
			want:  []Block{{Kind: KindBoldLine, Text: "Important"}},
		},
		{
			name:  "bold line with inner asterisk is a paragraph",
			input: "**a*b**",
			want:  []Block{{Kind: KindParagraph, Text: "**a*b**"}},
		},
		{
			name:  "paragraph is trimmed",
			input: "   plain text  ",
			want:  []Block{{Kind: KindParagraph, Text: "plain text"}},
		},
		{
			name:  "trailing blanks discarded",
			input: "text\n\n\n\n",
			want:  []Block{{Kind: KindParagraph, Text: "text"}},
		},
		{
			name:  "consecutive blanks are kept as separate blocks",
			input: "a\n\n\nb",
			want: []Block{
				{Kind: KindParagraph, Text: "a"},
				{Kind: KindBlank},
				{Kind: KindBlank},
				{Kind: KindParagraph, Text: "b"},
			},
		},
		{
			name:  "crlf line endings",
			input: "# A\r\nbody\r\n",
			want: []Block{
				{Kind: KindHeading1, Text: "A"},
				{Kind: KindParagraph, Text: "body"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Block{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q)\n got = %+v\nwant = %+v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify_CodeBlocks - Fenced code is emitted verbatim
// ---------------------------------------------------------------------------

func TestClassify_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("lines that look like markdown stay code", func(t *testing.T) {
		t.Parallel()

		input := "```\n# not a heading\n| a | b |\n|---|---|\n\n- item\n```"
		got := Classify(input)

		want := []Block{
			{Kind: KindCode, Text: "# not a heading"},
			{Kind: KindCode, Text: "| a | b |"},
			{Kind: KindCode, Text: "|---|---|"},
			{Kind: KindCode, Text: ""},
			{Kind: KindCode, Text: "- item"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Classify()\n got = %+v\nwant = %+v", got, want)
		}
	})

	t.Run("fence info string becomes the language", func(t *testing.T) {
		t.Parallel()

		got := Classify("```go\n  x := 1\n```\nafter")
		want := []Block{
			{Kind: KindCode, Text: "  x := 1", Lang: "go"},
			{Kind: KindParagraph, Text: "after"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Classify()\n got = %+v\nwant = %+v", got, want)
		}
	})

	t.Run("unclosed fence runs to the end", func(t *testing.T) {
		t.Parallel()

		got := Classify("```\na\nb")
		if len(got) != 2 {
			t.Fatalf("len(Classify()) = %d, want 2", len(got))
		}
		for _, b := range got {
			if b.Kind != KindCode {
				t.Errorf("Kind = %v, want code", b.Kind)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestClassify_Tables - Table detection takes priority
// ---------------------------------------------------------------------------

func TestClassify_Tables(t *testing.T) {
	t.Parallel()

	t.Run("simple table", func(t *testing.T) {
		t.Parallel()

		got := Classify("| A | B |\n|---|---|\n| 1 | 2 |")
		if len(got) != 1 {
			t.Fatalf("len(Classify()) = %d, want 1", len(got))
		}
		if got[0].Kind != KindTable {
			t.Fatalf("Kind = %v, want table", got[0].Kind)
		}
		want := &Table{Headers: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}}
		if !reflect.DeepEqual(got[0].Table, want) {
			t.Errorf("Table = %+v, want %+v", got[0].Table, want)
		}
	})

	t.Run("table ends at first non-pipe line", func(t *testing.T) {
		t.Parallel()

		got := Classify("intro\n| A |  B |\n|---|---|\n| 1 | 2 |\nafter")
		kinds := make([]Kind, len(got))
		for i, b := range got {
			kinds[i] = b.Kind
		}
		want := []Kind{KindParagraph, KindTable, KindParagraph}
		if !reflect.DeepEqual(kinds, want) {
			t.Errorf("kinds = %v, want %v", kinds, want)
		}
	})

	t.Run("header-only table without second line is dropped", func(t *testing.T) {
		t.Parallel()

		got := Classify("| A | B |\ntext")
		want := []Block{{Kind: KindParagraph, Text: "text"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Classify() = %+v, want %+v", got, want)
		}
	})

	t.Run("single pipe is not a table", func(t *testing.T) {
		t.Parallel()

		got := Classify("|")
		if len(got) != 1 || got[0].Kind != KindParagraph {
			t.Errorf("Classify(%q) = %+v, want one paragraph", "|", got)
		}
	})

	t.Run("indented table lines are accepted", func(t *testing.T) {
		t.Parallel()

		got := Classify("  | A |\n  |---|\n  | 1 |")
		if len(got) != 1 || got[0].Kind != KindTable {
			t.Fatalf("Classify() = %+v, want one table", got)
		}
		if got[0].Table.Rows[0][0] != "1" {
			t.Errorf("cell = %q, want %q", got[0].Table.Rows[0][0], "1")
		}
	})
}

// ---------------------------------------------------------------------------
// TestKind_String - Kind names
// ---------------------------------------------------------------------------

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindHeading2, "heading2"},
		{KindBoldLine, "bold-line"},
		{KindTable, "table"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_HeadingLevel(t *testing.T) {
	t.Parallel()

	if got := KindHeading3.HeadingLevel(); got != 3 {
		t.Errorf("HeadingLevel() = %d, want 3", got)
	}
	if got := KindParagraph.HeadingLevel(); got != 0 {
		t.Errorf("HeadingLevel() = %d, want 0", got)
	}
}
