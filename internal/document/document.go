// Package document wraps a sanitized fragment in a standalone HTML page
// for previewing rendered output outside the host application.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-safemd/internal/highlight"
	"github.com/alnah/go-safemd/internal/sanitize"
)

// ErrPageRender indicates the page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// DefaultTitle is used when a page has no title.
const DefaultTitle = "Document"

// baseCSS is the layout applied before the highlight stylesheet.
const baseCSS = `body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.5; }
pre { padding: .75rem 1rem; overflow-x: auto; border-radius: 4px; }
code { font-family: ui-monospace, monospace; font-size: .9em; }
blockquote { margin-left: 0; padding-left: 1rem; border-left: 3px solid #d0d7de; color: #57606a; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: .25rem .75rem; }
img { max-width: 100%; }
`

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .CSS}}
<style>{{.CSS}}</style>
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Page holds the parts of a standalone document.
type Page struct {
	Title string
	CSS   string
	Body  sanitize.Fragment
}

// Wrapper builds standalone pages.
type Wrapper interface {
	Wrap(ctx context.Context, page Page) (string, error)
}

// TemplateWrapper renders pages with a fixed HTML5 template.
type TemplateWrapper struct{}

// Compile-time interface check.
var _ Wrapper = (*TemplateWrapper)(nil)

// Wrap renders page as a complete HTML document. The title is escaped,
// the body is inserted as is, and CSS is escaped so it cannot close the
// <style> element.
func (w *TemplateWrapper) Wrap(ctx context.Context, page Page) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = DefaultTitle
	}

	data := struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(sanitizeCSS(page.CSS)), //nolint:gosec // closing sequences escaped
		Body:  page.Body.HTML(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// StyleSheet returns the base layout followed by the highlight stylesheet
// for the named Chroma style.
func StyleSheet(style string) (string, error) {
	css, err := highlight.StyleCSS(style)
	if err != nil {
		return "", err
	}
	return baseCSS + css, nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
