package markdown

// Extensions selects the optional syntax recognized by the parser.
// The zero value disables every extension.
type Extensions struct {
	HardWrap      bool // single newline inside a paragraph is a line break
	Autolink      bool // bare http(s)://, www. and email tokens become links
	Tables        bool // pipe tables with a delimiter row
	FencedCode    bool // ``` and ~~~ code fences
	Strikethrough bool // ~~text~~
	Superscript   bool // ^text
}

// Document is the root of a parsed tree.
type Document struct {
	Blocks []Block
}

// Block is a structural unit occupying whole lines.
type Block interface {
	block()
}

// Inline is a construct within the text of a leaf block.
type Inline interface {
	inline()
}

// Align is a table column alignment.
type Align int

// Column alignments, as declared by the table delimiter row.
const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the HTML align value, or "" for AlignNone.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

type (
	// Paragraph is a run of text lines.
	Paragraph struct {
		Inlines []Inline
	}

	// Heading is an ATX (#) or setext (underlined) heading.
	Heading struct {
		Level   int // 1..6
		Inlines []Inline
	}

	// List is a bullet or ordered list.
	List struct {
		Ordered bool
		Start   int  // first number of an ordered list
		Tight   bool // no blank lines between or inside items
		Items   []*ListItem
	}

	// ListItem holds the blocks of one list entry.
	ListItem struct {
		Blocks []Block
	}

	// Blockquote holds quoted blocks.
	Blockquote struct {
		Blocks []Block
	}

	// CodeBlock is a fenced or indented code block. Language is empty when
	// the fence carried no valid language tag.
	CodeBlock struct {
		Language string
		Text     string
	}

	// Table is a pipe table. Every row has len(Align) cells.
	Table struct {
		Align  []Align
		Header [][]Inline
		Rows   [][][]Inline
	}

	// ThematicBreak is a horizontal rule.
	ThematicBreak struct{}
)

func (*Paragraph) block()     {}
func (*Heading) block()       {}
func (*List) block()          {}
func (*ListItem) block()      {}
func (*Blockquote) block()    {}
func (*CodeBlock) block()     {}
func (*Table) block()         {}
func (*ThematicBreak) block() {}

type (
	// Text is literal text, already unescaped.
	Text struct {
		Text string
	}

	// Emphasis renders as <em>.
	Emphasis struct {
		Children []Inline
	}

	// Strong renders as <strong>.
	Strong struct {
		Children []Inline
	}

	// Strikethrough renders as <del>.
	Strikethrough struct {
		Children []Inline
	}

	// Superscript renders as <sup>.
	Superscript struct {
		Children []Inline
	}

	// CodeSpan is inline code; Code is taken literally.
	CodeSpan struct {
		Code string
	}

	// Link is an inline [text](href "title") link.
	Link struct {
		Href     string
		Title    string
		Children []Inline
	}

	// AutoLink is a URL or email address promoted to a link.
	AutoLink struct {
		URL   string // text as written
		Email bool
	}

	// Image is an inline ![alt](src "title") image.
	Image struct {
		Src   string
		Alt   string
		Title string
	}

	// LineBreak is a hard line break.
	LineBreak struct{}
)

func (*Text) inline()          {}
func (*Emphasis) inline()      {}
func (*Strong) inline()        {}
func (*Strikethrough) inline() {}
func (*Superscript) inline()   {}
func (*CodeSpan) inline()      {}
func (*Link) inline()          {}
func (*AutoLink) inline()      {}
func (*Image) inline()         {}
func (*LineBreak) inline()     {}

// Href returns the link target of an autolink: mailto: for email addresses,
// http:// for bare www. hosts, and the URL unchanged otherwise.
func (a *AutoLink) Href() string {
	switch {
	case a.Email:
		return "mailto:" + a.URL
	case hasPrefixFold(a.URL, "www."):
		return "http://" + a.URL
	default:
		return a.URL
	}
}

// PlainText flattens inline nodes to their text content, as used for image
// alt attributes.
func PlainText(list []Inline) string {
	var b []byte
	var walk func([]Inline)
	walk = func(list []Inline) {
		for _, x := range list {
			switch x := x.(type) {
			case *Text:
				b = append(b, x.Text...)
			case *CodeSpan:
				b = append(b, x.Code...)
			case *Emphasis:
				walk(x.Children)
			case *Strong:
				walk(x.Children)
			case *Strikethrough:
				walk(x.Children)
			case *Superscript:
				walk(x.Children)
			case *Link:
				walk(x.Children)
			case *AutoLink:
				b = append(b, x.URL...)
			case *Image:
				b = append(b, x.Alt...)
			case *LineBreak:
				b = append(b, '\n')
			}
		}
	}
	walk(list)
	return string(b)
}
