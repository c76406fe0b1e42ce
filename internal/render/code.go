package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-safemd/internal/highlight"
)

// CodeRenderer renders the body of a fenced or indented code block.
// language is empty when the block carries no valid language tag; code is
// the raw block text.
type CodeRenderer interface {
	RenderCode(language, code string) string
}

// CodeRendererFunc adapts a function to CodeRenderer.
type CodeRendererFunc func(language, code string) string

// RenderCode calls f(language, code).
func (f CodeRendererFunc) RenderCode(language, code string) string {
	return f(language, code)
}

// HighlightRenderer is the default CodeRenderer. It emits
// <pre><code class="lang"> with one <span class="token-class"> per
// highlighted span, or a bare <pre><code> when there is no language.
type HighlightRenderer struct{}

// RenderCode implements CodeRenderer.
func (HighlightRenderer) RenderCode(language, code string) string {
	var b strings.Builder
	b.Grow(len(code) + 32)
	if language == "" {
		b.WriteString("<pre><code>")
		b.WriteString(html.EscapeString(code))
		b.WriteString("</code></pre>")
		return b.String()
	}

	b.WriteString(`<pre><code class="`)
	b.WriteString(html.EscapeString(language))
	b.WriteString(`">`)
	if !highlight.Supported(language) {
		b.WriteString(html.EscapeString(code))
		b.WriteString("</code></pre>")
		return b.String()
	}
	for _, span := range highlight.Highlight(language, code) {
		if span.Class == highlight.Plain {
			b.WriteString(html.EscapeString(span.Text))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(string(span.Class))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString("</span>")
	}
	b.WriteString("</code></pre>")
	return b.String()
}
