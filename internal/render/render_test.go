package render_test

import (
	"strings"
	"testing"

	"github.com/alnah/go-safemd/internal/markdown"
	"github.com/alnah/go-safemd/internal/render"
)

var allExtensions = markdown.Extensions{
	Autolink:      true,
	Tables:        true,
	FencedCode:    true,
	Strikethrough: true,
	Superscript:   true,
}

// ---------------------------------------------------------------------------
// TestRender - Writes HTML for each block and inline node
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading",
			input: "# Title",
			want:  "<h1>Title</h1>\n",
		},
		{
			name:  "emphasis strong and link",
			input: "**bold** *italic* [link](http://example.com)",
			want:  `<p><strong>bold</strong> <em>italic</em> <a href="http://example.com">link</a></p>` + "\n",
		},
		{
			name:  "link title",
			input: `[a](/x "The title")`,
			want:  `<p><a href="/x" title="The title">a</a></p>` + "\n",
		},
		{
			name:  "tight list",
			input: "- a\n- b",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "loose list",
			input: "- a\n\n- b",
			want:  "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n",
		},
		{
			name:  "ordered list start",
			input: "3. x",
			want:  "<ol start=\"3\">\n<li>x</li>\n</ol>\n",
		},
		{
			name:  "ordered list from one",
			input: "1. x",
			want:  "<ol>\n<li>x</li>\n</ol>\n",
		},
		{
			name:  "nested list",
			input: "- a\n  - b",
			want:  "<ul>\n<li>a\n<ul>\n<li>b</li>\n</ul>\n</li>\n</ul>\n",
		},
		{
			name:  "blockquote",
			input: "> q",
			want:  "<blockquote>\n<p>q</p>\n</blockquote>\n",
		},
		{
			name:  "code block without language",
			input: "```\n<b>\n```",
			want:  "<pre><code>&lt;b&gt;\n</code></pre>\n",
		},
		{
			name:  "unknown language keeps class",
			input: "```nope\nx\n```",
			want:  "<pre><code class=\"nope\">x\n</code></pre>\n",
		},
		{
			name:  "table",
			input: "| a | b |\n| :-: | - |\n| 1 | 2 |",
			want: "<table>\n<thead>\n<tr>\n<th align=\"center\">a</th>\n<th>b</th>\n</tr>\n</thead>\n" +
				"<tbody>\n<tr>\n<td align=\"center\">1</td>\n<td>2</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name:  "thematic break",
			input: "---",
			want:  "<hr>\n",
		},
		{
			name:  "raw HTML escaped",
			input: `<script>alert("x")</script>`,
			want:  "<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>\n",
		},
		{
			name:  "image",
			input: `![a "b"](x.png "t")`,
			want:  `<p><img src="x.png" alt="a &#34;b&#34;" title="t"></p>` + "\n",
		},
		{
			name:  "hard break",
			input: "a  \nb",
			want:  "<p>a<br>\nb</p>\n",
		},
		{
			name:  "email autolink",
			input: "me@x.org",
			want:  `<p><a href="mailto:me@x.org">me@x.org</a></p>` + "\n",
		},
		{
			name:  "strikethrough and superscript",
			input: "~~a~~ ^b^",
			want:  "<p><del>a</del> <sup>b</sup></p>\n",
		},
		{
			name:  "code span",
			input: "`<i>`",
			want:  "<p><code>&lt;i&gt;</code></p>\n",
		},
	}

	r := render.New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := string(r.Render(markdown.ParseBlocks(tt.input, allExtensions)))
			if got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_NilDocument(t *testing.T) {
	t.Parallel()

	if got := render.New(nil).Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestHighlightRenderer - Default code block strategy
// ---------------------------------------------------------------------------

func TestHighlightRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		language     string
		code         string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "go keywords",
			language:     "go",
			code:         "func main() {}\n",
			wantContains: []string{`<pre><code class="go">`, `<span class="keyword">func</span>`, "</code></pre>"},
		},
		{
			name:         "escapes code",
			language:     "go",
			code:         "x := \"<script>\"\n",
			wantContains: []string{"&lt;script&gt;"},
			wantNot:      []string{"<script>"},
		},
		{
			name:         "no language",
			language:     "",
			code:         "a < b\n",
			wantContains: []string{"<pre><code>a &lt; b\n</code></pre>"},
			wantNot:      []string{"<span"},
		},
		{
			name:         "plain spans carry no class",
			language:     "no-such-language",
			code:         "x\n",
			wantNot:      []string{`class="plain"`},
			wantContains: []string{`<code class="no-such-language">x`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render.HighlightRenderer{}.RenderCode(tt.language, tt.code)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RenderCode() missing %q in %q", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("RenderCode() contains %q in %q", not, got)
				}
			}
		})
	}
}

func TestRender_CustomCodeRenderer(t *testing.T) {
	t.Parallel()

	var gotLang, gotCode string
	r := render.New(render.CodeRendererFunc(func(language, code string) string {
		gotLang, gotCode = language, code
		return "<pre>custom</pre>"
	}))

	got := string(r.Render(markdown.ParseBlocks("```py\nprint(1)\n```", allExtensions)))
	if got != "<pre>custom</pre>\n" {
		t.Errorf("Render() = %q, want %q", got, "<pre>custom</pre>\n")
	}
	if gotLang != "py" || gotCode != "print(1)\n" {
		t.Errorf("RenderCode(%q, %q), want (%q, %q)", gotLang, gotCode, "py", "print(1)\n")
	}
}
