package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// ErrStyleNotFound indicates an unknown chroma style name.
var ErrStyleNotFound = errors.New("highlight style not found")

// representative is the chroma token type whose style a class borrows.
var representative = map[TokenClass]chroma.TokenType{
	Keyword:     chroma.Keyword,
	Type:        chroma.KeywordType,
	String:      chroma.LiteralString,
	Number:      chroma.LiteralNumber,
	Comment:     chroma.Comment,
	Preproc:     chroma.CommentPreproc,
	Operator:    chroma.Operator,
	Punctuation: chroma.Punctuation,
	Function:    chroma.NameFunction,
	Builtin:     chroma.NameBuiltin,
}

// StyleNames returns the registered chroma style names, sorted.
func StyleNames() []string {
	return styles.Names()
}

// StyleCSS returns a stylesheet coloring highlighted code blocks with the
// named chroma style.
func StyleCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	var b strings.Builder
	bg := style.Get(chroma.Background)
	b.WriteString("pre {")
	writeEntry(&b, bg, true)
	b.WriteString(" }\n")

	for _, class := range Classes {
		tt, ok := representative[class]
		if !ok {
			continue
		}
		entry := style.Get(tt)
		if entry.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "pre code .%s {", class)
		writeEntry(&b, entry, false)
		b.WriteString(" }\n")
	}
	return b.String(), nil
}

func writeEntry(b *strings.Builder, e chroma.StyleEntry, background bool) {
	if e.Colour.IsSet() {
		fmt.Fprintf(b, " color: %s;", e.Colour)
	}
	if background && e.Background.IsSet() {
		fmt.Fprintf(b, " background-color: %s;", e.Background)
	}
	if e.Bold == chroma.Yes {
		b.WriteString(" font-weight: bold;")
	}
	if e.Italic == chroma.Yes {
		b.WriteString(" font-style: italic;")
	}
}
