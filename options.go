package safemd

import "github.com/alnah/go-safemd/internal/markdown"

// Options toggles the Markdown extensions. The zero value renders core
// Markdown only: paragraphs, headings, lists, blockquotes, indented code,
// emphasis, code spans, links, angle-bracket autolinks and images.
//
// Intra-word emphasis with underscores is always disabled, so snake_case
// identifiers render as written.
type Options struct {
	HardWrap         bool // single newline inside a paragraph becomes <br>
	Autolink         bool // bare http(s)://, www. and email text becomes a link
	Tables           bool // pipe tables with a delimiter row
	FencedCodeBlocks bool // ``` and ~~~ fences with an optional language tag
	Strikethrough    bool // ~~text~~
	Superscript      bool // ^text
}

// CommentOptions returns the preset used for comments.
func CommentOptions() Options {
	return Options{
		HardWrap:         true,
		Autolink:         true,
		Tables:           true,
		FencedCodeBlocks: true,
	}
}

// PageOptions returns the preset used for page bodies. It adds
// strikethrough and superscript to CommentOptions.
func PageOptions() Options {
	o := CommentOptions()
	o.Strikethrough = true
	o.Superscript = true
	return o
}

func (o Options) extensions() markdown.Extensions {
	return markdown.Extensions{
		HardWrap:      o.HardWrap,
		Autolink:      o.Autolink,
		Tables:        o.Tables,
		FencedCode:    o.FencedCodeBlocks,
		Strikethrough: o.Strikethrough,
		Superscript:   o.Superscript,
	}
}
