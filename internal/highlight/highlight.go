// Package highlight splits fenced code into classified spans for syntax
// coloring.
//
// Tokenizing is delegated to chroma lexers. Chroma's token types are folded
// into a small fixed set of classes (TokenClass), so the class attribute a
// renderer emits can only ever take one of a handful of known values.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// MaxHighlightBytes is the largest code block that is tokenized. Larger
// blocks are returned as a single plain span.
const MaxHighlightBytes = 64 << 10

// TokenClass classifies a span of highlighted code.
type TokenClass string

// Token classes. Plain spans are rendered without a class.
const (
	Plain       TokenClass = "plain"
	Keyword     TokenClass = "keyword"
	Type        TokenClass = "type"
	String      TokenClass = "string"
	Number      TokenClass = "number"
	Comment     TokenClass = "comment"
	Preproc     TokenClass = "preproc"
	Operator    TokenClass = "operator"
	Punctuation TokenClass = "punctuation"
	Function    TokenClass = "function"
	Builtin     TokenClass = "builtin"
)

// Classes lists every TokenClass.
var Classes = []TokenClass{
	Plain, Keyword, Type, String, Number, Comment,
	Preproc, Operator, Punctuation, Function, Builtin,
}

// Span is a run of code text sharing one class.
type Span struct {
	Text  string
	Class TokenClass
}

// Supported reports whether a lexer exists for language.
func Supported(language string) bool {
	return language != "" && lexers.Get(language) != nil
}

// Highlight tokenizes code written in language. The concatenated span texts
// always equal code. An empty or unknown language, an oversized block, or
// a lexer failure yields a single Plain span.
func Highlight(language, code string) []Span {
	if code == "" {
		return nil
	}
	plain := []Span{{Text: code, Class: Plain}}
	if language == "" || len(code) > MaxHighlightBytes {
		return plain
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return plain
	}
	spans, ok := tokenize(chroma.Coalesce(lexer), code)
	if !ok {
		return plain
	}
	return spans
}

func tokenize(lexer chroma.Lexer, code string) (spans []Span, ok bool) {
	defer func() {
		if recover() != nil {
			spans, ok = nil, false
		}
	}()

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, false
	}

	// Some lexers append a final newline; spans are clipped to the input.
	pos, start := 0, 0
	class := Plain
	for tok := it(); tok != chroma.EOF && pos < len(code); tok = it() {
		value := tok.Value
		if rest := len(code) - pos; len(value) > rest {
			value = value[:rest]
		}
		if value == "" {
			continue
		}
		if !strings.HasPrefix(code[pos:], value) {
			return nil, false
		}
		if c := classify(tok.Type); c != class {
			if pos > start {
				spans = append(spans, Span{Text: code[start:pos], Class: class})
			}
			start, class = pos, c
		}
		pos += len(value)
	}
	if pos > start {
		spans = append(spans, Span{Text: code[start:pos], Class: class})
	}
	if pos != len(code) {
		return nil, false
	}
	return spans, true
}

// classify maps a chroma token type to a TokenClass.
func classify(t chroma.TokenType) TokenClass {
	switch {
	case t == chroma.KeywordType || t == chroma.NameClass:
		return Type
	case t.InCategory(chroma.Keyword):
		return Keyword
	case t == chroma.NameBuiltin || t == chroma.NameBuiltinPseudo:
		return Builtin
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return Function
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InSubCategory(chroma.LiteralNumber):
		return Number
	case t == chroma.CommentPreproc || t == chroma.CommentPreprocFile:
		return Preproc
	case t.InCategory(chroma.Comment):
		return Comment
	case t.InCategory(chroma.Operator):
		return Operator
	case t == chroma.Punctuation:
		return Punctuation
	default:
		return Plain
	}
}
