// Package safemd renders user-submitted Markdown to HTML that is safe to
// embed in a page.
//
// # Quick Start
//
// Render a comment with the default preset:
//
//	frag := safemd.RenderMarkdown(comment, safemd.CommentOptions())
//	tmpl.Execute(w, map[string]any{"Body": frag.HTML()})
//
// The result is a SanitizedFragment: every element, attribute and URL in it
// has passed the allowlist, so it is embedded without further escaping.
//
// # Rendering Pipeline
//
// Each call runs the same stages:
//
//  1. Block parsing (paragraphs, headings, lists, blockquotes, code, tables)
//  2. Inline parsing (emphasis, code spans, links, autolinks, images)
//  3. Code highlighting via Chroma for fenced blocks with a language tag
//  4. HTML emission, escaping every text node and attribute value
//  5. Sanitization against a fixed tag, attribute and URL scheme allowlist
//
// Raw HTML in the input is never passed through; it is rendered as text.
// Every stage is total: malformed Markdown degrades to literal text and no
// input makes rendering fail.
//
// # Configuration
//
// Use functional options when input size must be bounded or code blocks
// rendered differently:
//
//	r := safemd.New(
//	    safemd.WithOptions(safemd.PageOptions()),
//	    safemd.WithMaxInputSize(256 << 10),
//	)
//	frag, err := r.Render(ctx, text)
//	if errors.Is(err, safemd.ErrInputTooLarge) {
//	    // reject the submission
//	}
//
// # Images
//
// ExtractImageURLs lists the image URLs referenced by raw Markdown, in
// document order and without validation. ImageMarkdown formats the
// reference inserted after an upload:
//
//	text += "\n" + safemd.ImageMarkdown(uploadedURL)
//
// # Parallel Processing
//
// A Renderer holds no per-call state. RenderBatch spreads many inputs over
// a bounded set of goroutines:
//
//	results := r.RenderBatch(ctx, texts, safemd.ResolveWorkers(0))
package safemd
