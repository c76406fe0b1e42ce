package highlight_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-safemd/internal/highlight"
)

func joined(spans []highlight.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func hasClass(spans []highlight.Span, class highlight.TokenClass, text string) bool {
	for _, s := range spans {
		if s.Class == class && strings.Contains(s.Text, text) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// TestHighlight - Splits code into classified spans
// ---------------------------------------------------------------------------

func TestHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		language  string
		code      string
		wantPlain bool
		wantClass highlight.TokenClass
		wantText  string
	}{
		{
			name:      "unknown language",
			language:  "no-such-language",
			code:      "func main() {}\n",
			wantPlain: true,
		},
		{
			name:      "absent language",
			language:  "",
			code:      "func main() {}\n",
			wantPlain: true,
		},
		{
			name:      "go keyword",
			language:  "go",
			code:      "func main() {}\n",
			wantClass: highlight.Keyword,
			wantText:  "func",
		},
		{
			name:      "go string",
			language:  "go",
			code:      "x := \"hello\"\n",
			wantClass: highlight.String,
			wantText:  "hello",
		},
		{
			name:      "go comment",
			language:  "go",
			code:      "// note\nx := 1\n",
			wantClass: highlight.Comment,
			wantText:  "note",
		},
		{
			name:      "go number",
			language:  "go",
			code:      "x := 42\n",
			wantClass: highlight.Number,
			wantText:  "42",
		},
		{
			name:      "language alias is case-insensitive",
			language:  "Python",
			code:      "def f():\n    pass\n",
			wantClass: highlight.Keyword,
			wantText:  "def",
		},
		{
			name:      "oversized block",
			language:  "go",
			code:      strings.Repeat("x := 1\n", highlight.MaxHighlightBytes/7+1),
			wantPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spans := highlight.Highlight(tt.language, tt.code)
			if got := joined(spans); got != tt.code {
				t.Fatalf("joined spans = %q, want %q", got, tt.code)
			}
			if tt.wantPlain {
				if len(spans) != 1 || spans[0].Class != highlight.Plain {
					t.Errorf("Highlight() = %+v, want one plain span", spans)
				}
				return
			}
			if !hasClass(spans, tt.wantClass, tt.wantText) {
				t.Errorf("Highlight() = %+v, want %q in a %s span", spans, tt.wantText, tt.wantClass)
			}
			for _, s := range spans {
				if !slices.Contains(highlight.Classes, s.Class) {
					t.Errorf("span class %q is not a known class", s.Class)
				}
			}
		})
	}
}

func TestHighlight_Empty(t *testing.T) {
	t.Parallel()

	if spans := highlight.Highlight("go", ""); len(spans) != 0 {
		t.Errorf("Highlight(empty) = %+v, want no spans", spans)
	}
}

func TestHighlight_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	code := "package main"
	if got := joined(highlight.Highlight("go", code)); got != code {
		t.Errorf("joined spans = %q, want %q", got, code)
	}
}

// ---------------------------------------------------------------------------
// TestSupported - Reports known languages
// ---------------------------------------------------------------------------

func TestSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language string
		want     bool
	}{
		{"go", true},
		{"python", true},
		{"", false},
		{"no-such-language", false},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			t.Parallel()

			if got := highlight.Supported(tt.language); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.language, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleCSS - Builds a stylesheet from a chroma style
// ---------------------------------------------------------------------------

func TestStyleCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		style        string
		wantErr      error
		wantContains []string
	}{
		{
			name:         "default style",
			style:        highlight.DefaultStyle,
			wantContains: []string{"pre {", "pre code .keyword {", "pre code .comment {", "color: #"},
		},
		{
			name:         "dark style",
			style:        "monokai",
			wantContains: []string{"pre {", "background-color: #"},
		},
		{
			name:    "unknown style",
			style:   "no-such-style",
			wantErr: highlight.ErrStyleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := highlight.StyleCSS(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("StyleCSS() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StyleCSS() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(css, want) {
					t.Errorf("StyleCSS() missing %q in:\n%s", want, css)
				}
			}
			if strings.Contains(css, "</") {
				t.Error("StyleCSS() contains </")
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := highlight.StyleNames()
	found := false
	for _, n := range names {
		if n == highlight.DefaultStyle {
			found = true
		}
	}
	if !found {
		t.Errorf("StyleNames() missing %q", highlight.DefaultStyle)
	}
}
