// Package render turns a parsed Markdown document into an HTML fragment.
//
// Every text node and attribute value is escaped with
// golang.org/x/net/html.EscapeString before it is written. The output is
// an Unsanitized fragment: callers pass it through sanitize.Sanitize
// before it reaches a page.
package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-safemd/internal/markdown"
	"github.com/alnah/go-safemd/internal/sanitize"
)

// Renderer walks a document tree and writes HTML. It holds no per-call
// state and is safe for concurrent use when its CodeRenderer is.
type Renderer struct {
	code CodeRenderer
}

// New returns a Renderer. A nil code renderer selects HighlightRenderer.
func New(code CodeRenderer) *Renderer {
	if code == nil {
		code = HighlightRenderer{}
	}
	return &Renderer{code: code}
}

// Render returns the HTML for doc.
func (r *Renderer) Render(doc *markdown.Document) sanitize.Unsanitized {
	if doc == nil {
		return ""
	}
	w := &writer{code: r.code}
	w.blocks(doc.Blocks)
	return sanitize.Unsanitized(w.b.String())
}

type writer struct {
	b    strings.Builder
	code CodeRenderer
}

func (w *writer) text(s string) {
	w.b.WriteString(html.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.b.WriteByte(' ')
	w.b.WriteString(name)
	w.b.WriteString(`="`)
	w.text(value)
	w.b.WriteByte('"')
}

func (w *writer) blocks(blocks []markdown.Block) {
	for _, b := range blocks {
		w.block(b, false)
	}
}

// block writes one block. In a tight list item, paragraphs are written
// without <p> tags.
func (w *writer) block(b markdown.Block, tight bool) {
	switch b := b.(type) {
	case *markdown.Paragraph:
		if tight {
			w.inlines(b.Inlines)
			return
		}
		w.b.WriteString("<p>")
		w.inlines(b.Inlines)
		w.b.WriteString("</p>\n")

	case *markdown.Heading:
		tag := "h" + strconv.Itoa(min(max(b.Level, 1), 6))
		w.b.WriteString("<" + tag + ">")
		w.inlines(b.Inlines)
		w.b.WriteString("</" + tag + ">\n")

	case *markdown.List:
		w.list(b)

	case *markdown.ListItem:
		w.item(b, false)

	case *markdown.Blockquote:
		w.b.WriteString("<blockquote>\n")
		w.blocks(b.Blocks)
		w.b.WriteString("</blockquote>\n")

	case *markdown.CodeBlock:
		w.b.WriteString(w.code.RenderCode(b.Language, b.Text))
		w.b.WriteByte('\n')

	case *markdown.Table:
		w.table(b)

	case *markdown.ThematicBreak:
		w.b.WriteString("<hr>\n")
	}
}

func (w *writer) list(l *markdown.List) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	w.b.WriteString("<" + tag)
	if l.Ordered && l.Start != 1 {
		w.attr("start", strconv.Itoa(l.Start))
	}
	w.b.WriteString(">\n")
	for _, it := range l.Items {
		w.item(it, l.Tight)
	}
	w.b.WriteString("</" + tag + ">\n")
}

func (w *writer) item(it *markdown.ListItem, tight bool) {
	w.b.WriteString("<li>")
	if !tight && len(it.Blocks) > 0 {
		w.b.WriteByte('\n')
	}
	for i, b := range it.Blocks {
		_, isPara := b.(*markdown.Paragraph)
		if tight && !isPara && i == 0 {
			w.b.WriteByte('\n')
		}
		w.block(b, tight)
		if tight && isPara && i < len(it.Blocks)-1 {
			w.b.WriteByte('\n')
		}
	}
	w.b.WriteString("</li>\n")
}

func (w *writer) table(t *markdown.Table) {
	w.b.WriteString("<table>\n<thead>\n")
	w.row("th", t.Header, t.Align)
	w.b.WriteString("</thead>\n")
	if len(t.Rows) > 0 {
		w.b.WriteString("<tbody>\n")
		for _, row := range t.Rows {
			w.row("td", row, t.Align)
		}
		w.b.WriteString("</tbody>\n")
	}
	w.b.WriteString("</table>\n")
}

func (w *writer) row(tag string, cells [][]markdown.Inline, align []markdown.Align) {
	w.b.WriteString("<tr>\n")
	for i, cell := range cells {
		w.b.WriteString("<" + tag)
		if i < len(align) && align[i] != markdown.AlignNone {
			w.attr("align", align[i].String())
		}
		w.b.WriteByte('>')
		w.inlines(cell)
		w.b.WriteString("</" + tag + ">\n")
	}
	w.b.WriteString("</tr>\n")
}

func (w *writer) inlines(list []markdown.Inline) {
	for _, x := range list {
		w.inline(x)
	}
}

func (w *writer) wrap(tag string, children []markdown.Inline) {
	w.b.WriteString("<" + tag + ">")
	w.inlines(children)
	w.b.WriteString("</" + tag + ">")
}

func (w *writer) inline(x markdown.Inline) {
	switch x := x.(type) {
	case *markdown.Text:
		w.text(x.Text)
	case *markdown.Emphasis:
		w.wrap("em", x.Children)
	case *markdown.Strong:
		w.wrap("strong", x.Children)
	case *markdown.Strikethrough:
		w.wrap("del", x.Children)
	case *markdown.Superscript:
		w.wrap("sup", x.Children)
	case *markdown.CodeSpan:
		w.b.WriteString("<code>")
		w.text(x.Code)
		w.b.WriteString("</code>")
	case *markdown.Link:
		w.b.WriteString("<a")
		w.attr("href", x.Href)
		if x.Title != "" {
			w.attr("title", x.Title)
		}
		w.b.WriteByte('>')
		w.inlines(x.Children)
		w.b.WriteString("</a>")
	case *markdown.AutoLink:
		w.b.WriteString("<a")
		w.attr("href", x.Href())
		w.b.WriteByte('>')
		w.text(x.URL)
		w.b.WriteString("</a>")
	case *markdown.Image:
		w.b.WriteString("<img")
		w.attr("src", x.Src)
		w.attr("alt", x.Alt)
		if x.Title != "" {
			w.attr("title", x.Title)
		}
		w.b.WriteByte('>')
	case *markdown.LineBreak:
		w.b.WriteString("<br>\n")
	}
}
