// Package markdown parses user-submitted Markdown into a block/inline tree.
//
// Parsing is total: any byte sequence yields a Document, and constructs that
// fail to close degrade to literal text. Every scanner in this package is a
// single forward pass with bounded lookahead, so the cost of a parse grows
// linearly with the input:
//   - block containers (blockquotes, list items) nest at most MaxNestingDepth deep
//   - the emphasis delimiter stack holds at most maxDelimiters entries
//   - link destinations and titles are scanned for at most maxLinkTail bytes
//
// Raw HTML is never recognized; angle brackets are ordinary text and are
// escaped by the renderer.
package markdown
