package main

// Notes:
// - runMain: we test command dispatch and exit codes. File rendering itself
//   is covered by render_test.go.
// - hasVerboseFlag: we test flag detection before the "--" terminator.
// - We don't test main() or maxprocs.Set (process-wide side effects).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "![x](/x.png)"})

	tests := []struct {
		name         string
		args         []string
		stdin        string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"safemd"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: safemd"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"safemd", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"safemd dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"safemd", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: safemd", "Commands:"},
		},
		{
			name:         "--help is help",
			args:         []string{"safemd", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Commands:"},
		},
		{
			name:         "help render shows render help",
			args:         []string{"safemd", "help", "render"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: safemd render"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"safemd", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "render stdin",
			args:         []string{"safemd", "render"},
			stdin:        "*hi*",
			wantCode:     ExitSuccess,
			wantInStdout: []string{"<p><em>hi</em></p>"},
		},
		{
			name:         "images",
			args:         []string{"safemd", "images", filepath.Join(dir, "doc.md")},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"/x.png"},
		},
		{
			name:         "css",
			args:         []string{"safemd", "css"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"pre {"},
		},
		{
			name:         "nonexistent file exits with ExitIO",
			args:         []string{"safemd", "render", filepath.Join(dir, "missing.md")},
			wantCode:     ExitIO,
			wantInStderr: []string{"error:"},
		},
		{
			name:         "no input exits with ExitIO and a hint",
			args:         []string{"safemd", "render"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified", "hint:"},
		},
		{
			name:     "bad workers exits with ExitUsage",
			args:     []string{"safemd", "render", "-w", "100", "-"},
			stdin:    "x",
			wantCode: ExitUsage,
		},
		{
			name:     "failed batch exits with ExitGeneral",
			args:     []string{"safemd", "render", "--max-bytes", "1", filepath.Join(dir, "doc.md")},
			wantCode: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.stdin, nil)
			code := runMain(context.Background(), tt.args, env.Environment)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, env.stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(env.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, env.stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(env.stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, env.stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"render", "-v", "doc.md"}, true},
		{[]string{"render", "--verbose"}, true},
		{[]string{"render", "doc.md"}, false},
		{[]string{"render", "--", "-v"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
