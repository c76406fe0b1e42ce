package main

// Notes:
// - renderBatch: we test result ordering, per-file failures that don't stop
//   the batch, and cancellation.
// - printResults: we test quiet/verbose/default output and the summary line.
// - We don't test worker scheduling order (non-deterministic by design).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-safemd"
)

func testParams(workers int) *renderParams {
	return &renderParams{
		renderer: safemd.New(safemd.WithMaxInputSize(64)),
		workers:  workers,
	}
}

// ---------------------------------------------------------------------------
// TestRenderBatch - Parallel file rendering
// ---------------------------------------------------------------------------

func TestRenderBatch(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"1.md":   "one",
		"2.md":   "two",
		"big.md": strings.Repeat("x", 100),
		"4.md":   "four",
	})

	var files []FileToRender
	for _, name := range []string{"1.md", "missing.md", "2.md", "big.md", "4.md"} {
		in := filepath.Join(dir, name)
		files = append(files, FileToRender{
			InputPath:  in,
			OutputPath: filepath.Join(dir, "out", strings.TrimSuffix(name, ".md")+".html"),
		})
	}

	results := renderBatch(context.Background(), files, testParams(3))

	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.InputPath != files[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
	}

	if !errors.Is(results[1].Err, ErrReadMarkdown) {
		t.Errorf("missing file error = %v, want ErrReadMarkdown", results[1].Err)
	}
	if !errors.Is(results[3].Err, safemd.ErrInputTooLarge) {
		t.Errorf("big file error = %v, want ErrInputTooLarge", results[3].Err)
	}
	for _, i := range []int{0, 2, 4} {
		if results[i].Err != nil {
			t.Errorf("results[%d].Err = %v, want nil", i, results[i].Err)
		}
	}

	if got := readFile(t, filepath.Join(dir, "out", "2.html")); got != "<p>two</p>\n" {
		t.Errorf("2.html = %q, want %q", got, "<p>two</p>\n")
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "big.html")); !os.IsNotExist(err) {
		t.Error("failed render should not write output")
	}
}

func TestRenderBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := renderBatch(context.Background(), nil, testParams(0)); got != nil {
		t.Errorf("renderBatch(nil) = %v, want nil", got)
	}
}

func TestRenderFile_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A"})
	tick := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	params := testParams(1)
	params.now = func() time.Time {
		tick = tick.Add(10 * time.Millisecond)
		return tick
	}

	r := renderFile(context.Background(), FileToRender{
		InputPath:  filepath.Join(dir, "a.md"),
		OutputPath: filepath.Join(dir, "a.html"),
	}, params)
	if r.Err != nil {
		t.Fatalf("renderFile() error = %v", r.Err)
	}
	if r.Duration != 10*time.Millisecond {
		t.Errorf("Duration = %v, want %v", r.Duration, 10*time.Millisecond)
	}
}

func TestRenderBatch_Canceled(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "a", "b.md": "b"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []FileToRender{
		{InputPath: filepath.Join(dir, "a.md"), OutputPath: filepath.Join(dir, "a.html")},
		{InputPath: filepath.Join(dir, "b.md"), OutputPath: filepath.Join(dir, "b.html")},
	}
	for _, r := range renderBatch(ctx, files, testParams(2)) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
}

func TestRenderFile_OutputDirectoryFailure(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "a", "blocker": "file"})

	r := renderFile(context.Background(), FileToRender{
		InputPath:  filepath.Join(dir, "a.md"),
		OutputPath: filepath.Join(dir, "blocker", "a.html"),
	}, testParams(1))

	if !errors.Is(r.Err, ErrWriteHTML) {
		t.Fatalf("error = %v, want ErrWriteHTML", r.Err)
	}
	if !strings.Contains(r.Err.Error(), "hint:") {
		t.Errorf("error should carry a hint, got %v", r.Err)
	}
}

// ---------------------------------------------------------------------------
// TestPageTitle - Title from file name
// ---------------------------------------------------------------------------

func TestPageTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"docs/intro.md":       "intro",
		"release.notes.md":    "release.notes",
		"/abs/README.markdown": "README",
	}
	for in, want := range tests {
		if got := pageTitle(in); got != want {
			t.Errorf("pageTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Result reporting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a.md", OutputPath: "a.html", Duration: 1500 * time.Microsecond},
		{InputPath: "b.md", Err: fmt.Errorf("%w: boom", ErrReadMarkdown)},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		wantNot    []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created a.html", "1 succeeded, 1 failed"},
			wantNot:    []string{"a.md ->"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"a.md -> a.html (2ms)", "1 succeeded, 1 failed"},
		},
		{
			name:    "quiet",
			quiet:   true,
			wantNot: []string{"Created", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("", nil)
			failed := printResults(results, tt.quiet, tt.verbose, env.Environment)

			if failed != 1 {
				t.Errorf("printResults() = %d, want 1", failed)
			}
			if !strings.Contains(env.stderr.String(), "FAILED b.md: failed to read markdown file: boom") {
				t.Errorf("stderr = %q, want FAILED line", env.stderr.String())
			}
			stdout := env.stdout.String()
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(stdout, not) {
					t.Errorf("stdout should not contain %q, got %q", not, stdout)
				}
			}
		})
	}
}

func TestPrintResults_SingleFileNoSummary(t *testing.T) {
	t.Parallel()

	env := newTestEnv("", nil)
	printResults([]RenderResult{{InputPath: "a.md", OutputPath: "a.html"}}, false, false, env.Environment)

	if strings.Contains(env.stdout.String(), "succeeded") {
		t.Errorf("single result should not print a summary, got %q", env.stdout.String())
	}
}
