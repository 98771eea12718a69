package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	kbpdf "github.com/alnah/go-kbpdf"
)

// fakeRenderer records inputs and optionally fails for chosen paths.
type fakeRenderer struct {
	mu     sync.Mutex
	inputs map[string]kbpdf.Input
	failOn string
}

func (f *fakeRenderer) RenderFile(_ context.Context, in kbpdf.Input, path string) (*kbpdf.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inputs == nil {
		f.inputs = make(map[string]kbpdf.Input)
	}
	f.inputs[path] = in
	if f.failOn != "" && strings.HasSuffix(path, f.failOn) {
		return nil, kbpdf.ErrSinkWrite
	}
	return &kbpdf.Result{Pages: 3}, nil
}

// ---------------------------------------------------------------------------
// TestBuildInput - Front matter and title fallback
// ---------------------------------------------------------------------------

func TestBuildInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		params   conversionParams
		want     kbpdf.Metadata
		wantBody string
	}{
		{
			name:     "front matter wins",
			content:  "---\ntitle: Refund policy\ncategory: Payments\napproved: 2025-03-03\n---\n# Heading\n",
			params:   conversionParams{title: "Flag", category: "Config", approved: "auto"},
			want:     kbpdf.Metadata{Title: "Refund policy", Category: "Payments", ApprovedAt: "2025-03-03"},
			wantBody: "# Heading\n",
		},
		{
			name:     "flag title before heading",
			content:  "# Heading\n",
			params:   conversionParams{title: "Flag", category: "Config"},
			want:     kbpdf.Metadata{Title: "Flag", Category: "Config"},
			wantBody: "# Heading\n",
		},
		{
			name:     "first level-1 heading",
			content:  "intro\n## Scope\n# **Chargebacks** explained\n# Second\n",
			want:     kbpdf.Metadata{Title: "Chargebacks explained"},
			wantBody: "intro\n## Scope\n# **Chargebacks** explained\n# Second\n",
		},
		{
			name:     "file name last",
			content:  "## Only sections\n",
			want:     kbpdf.Metadata{Title: "refund policy"},
			wantBody: "## Only sections\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, err := buildInput(tt.content, filepath.Join("kb", "refund-policy.md"), &tt.params)
			if err != nil {
				t.Fatalf("buildInput() error = %v", err)
			}
			if in.Metadata != tt.want {
				t.Errorf("Metadata = %+v, want %+v", in.Metadata, tt.want)
			}
			if in.Markdown != tt.wantBody {
				t.Errorf("Markdown = %q, want %q", in.Markdown, tt.wantBody)
			}
		})
	}

	t.Run("invalid front matter", func(t *testing.T) {
		t.Parallel()

		_, err := buildInput("---\ntitle: [oops\n---\nbody", "a.md", &conversionParams{})
		if !errors.Is(err, ErrFrontMatter) {
			t.Errorf("buildInput() error = %v, want ErrFrontMatter", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Worker pool over discovered files
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []FileToConvert
		for _, name := range []string{"a", "b", "c", "d"} {
			in := filepath.Join(dir, name+".md")
			writeFile(t, in, "# "+strings.ToUpper(name))
			files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", "nested", name+".pdf")})
		}

		r := &fakeRenderer{failOn: "c.pdf"}
		results := convertBatch(context.Background(), r, files, &conversionParams{category: "Ops"}, 3)

		if len(results) != len(files) {
			t.Fatalf("got %d results, want %d", len(results), len(files))
		}
		for i, res := range results {
			if res.InputPath != files[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, res.InputPath, files[i].InputPath)
			}
		}
		if !errors.Is(results[2].Err, kbpdf.ErrSinkWrite) {
			t.Errorf("results[2].Err = %v, want ErrSinkWrite", results[2].Err)
		}
		if results[0].Err != nil || results[0].Pages != 3 {
			t.Errorf("results[0] = %+v", results[0])
		}
		if got := r.inputs[files[1].OutputPath].Metadata; got.Title != "B" || got.Category != "Ops" {
			t.Errorf("metadata for b = %+v", got)
		}
		if info, err := os.Stat(filepath.Join(dir, "out", "nested")); err != nil || !info.IsDir() {
			t.Errorf("output directory not created: %v", err)
		}
	})

	t.Run("unreadable input", func(t *testing.T) {
		t.Parallel()

		files := []FileToConvert{{InputPath: filepath.Join(t.TempDir(), "gone.md"), OutputPath: "gone.pdf"}}
		results := convertBatch(context.Background(), &fakeRenderer{}, files, &conversionParams{}, 1)
		if !errors.Is(results[0].Err, ErrReadMarkdown) {
			t.Errorf("Err = %v, want ErrReadMarkdown", results[0].Err)
		}
	})

	t.Run("cancelled context skips work", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &fakeRenderer{}
		files := []FileToConvert{{InputPath: "a.md", OutputPath: "a.pdf"}, {InputPath: "b.md", OutputPath: "b.pdf"}}
		results := convertBatch(ctx, r, files, &conversionParams{}, 2)
		for i, res := range results {
			if !errors.Is(res.Err, context.Canceled) {
				t.Errorf("results[%d].Err = %v, want context.Canceled", i, res.Err)
			}
		}
		if len(r.inputs) != 0 {
			t.Errorf("renderer called %d times, want 0", len(r.inputs))
		}
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		if got := convertBatch(context.Background(), &fakeRenderer{}, nil, &conversionParams{}, 4); got != nil {
			t.Errorf("convertBatch(nil) = %v, want nil", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - Per-file lines and summary
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.pdf", Pages: 4},
		{InputPath: "b.md", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		noStdout   bool
	}{
		{name: "default", wantStdout: []string{"Created a.pdf", "1 succeeded, 1 failed"}},
		{name: "verbose", verbose: true, wantStdout: []string{"a.md -> a.pdf (4 pages"}},
		{name: "quiet", quiet: true, noStdout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			if failed := printResults(results, tt.quiet, tt.verbose, env); failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md: boom") {
				t.Errorf("stderr = %q", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want substring %q", stdout.String(), want)
				}
			}
			if tt.noStdout && stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBatchError - Failure summary keeps the first cause
// ---------------------------------------------------------------------------

func TestBatchError(t *testing.T) {
	t.Parallel()

	if err := batchError([]ConversionResult{{InputPath: "a.md"}}); err != nil {
		t.Errorf("batchError(success) = %v, want nil", err)
	}

	err := batchError([]ConversionResult{
		{InputPath: "a.md"},
		{InputPath: "b.md", Err: ErrReadMarkdown},
		{InputPath: "c.md", Err: kbpdf.ErrSinkWrite},
	})
	if !errors.Is(err, ErrConversionFailed) || !errors.Is(err, ErrReadMarkdown) {
		t.Errorf("batchError() = %v, want ErrConversionFailed wrapping ErrReadMarkdown", err)
	}
	if !strings.Contains(err.Error(), "2 of 3 files") {
		t.Errorf("batchError() = %q, want count", err)
	}
}
