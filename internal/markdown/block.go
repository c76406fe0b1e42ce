package markdown

import (
	"strings"
)

// MaxNestingDepth bounds how deeply blockquotes and list items may nest.
// Container markers beyond this depth are kept as literal text.
const MaxNestingDepth = 16

// ParseBlocks parses text into a Document. It never fails: anything that is
// not recognized as a block construct becomes paragraph text.
func ParseBlocks(text string, ext Extensions) *Document {
	p := &blockParser{ext: ext}
	return &Document{Blocks: p.parse(splitLines(normalize(text)), 0)}
}

type blockParser struct {
	ext Extensions
}

// parse classifies lines one at a time. Each sub-parser consumes at least
// one line, so the loop always advances.
func (p *blockParser) parse(lines []string, depth int) []Block {
	var blocks []Block
	for i := 0; i < len(lines); {
		line := lines[i]
		if isBlank(line) {
			i++
			continue
		}

		var b Block
		var n int
		if f, ok := p.fenceStart(line); ok {
			b, n = fencedCode(lines[i:], f)
		} else if level, text, ok := atxHeading(line); ok {
			b, n = &Heading{Level: level, Inlines: p.inline(text)}, 1
		} else if isThematicBreak(line) {
			b, n = &ThematicBreak{}, 1
		} else if _, ok := p.quoteMarker(line, depth); ok {
			b, n = p.blockquote(lines[i:], depth)
		} else if m, ok := p.listMarker(line, depth); ok {
			b, n = p.list(lines[i:], m, depth)
		} else if cols, _ := indentation(line); cols >= 4 {
			b, n = indentedCode(lines[i:])
		} else if t, tn, ok := p.table(lines[i:], depth); ok {
			b, n = t, tn
		} else {
			b, n = p.paragraph(lines[i:], depth)
		}
		blocks = append(blocks, b)
		i += n
	}
	return blocks
}

func (p *blockParser) inline(text string) []Inline {
	return ParseInline(text, p.ext)
}

// interruptsParagraph reports whether line starts a block that ends an
// open paragraph. Indented lines and list items that could not start a
// list inside a sentence (empty items, ordered items not starting at 1)
// continue the paragraph instead.
func (p *blockParser) interruptsParagraph(line string, depth int) bool {
	if _, ok := p.fenceStart(line); ok {
		return true
	}
	if _, _, ok := atxHeading(line); ok {
		return true
	}
	if isThematicBreak(line) {
		return true
	}
	if _, ok := p.quoteMarker(line, depth); ok {
		return true
	}
	if m, ok := p.listMarker(line, depth); ok {
		return !m.empty && (!m.ordered || m.start == 1)
	}
	return false
}

func (p *blockParser) paragraph(lines []string, depth int) (Block, int) {
	text := []string{strings.TrimLeft(lines[0], " \t")}
	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) {
			break
		}
		if level := setextLevel(line); level > 0 {
			return &Heading{Level: level, Inlines: p.inline(joinParagraph(text))}, i + 1
		}
		if p.interruptsParagraph(line, depth) {
			break
		}
		text = append(text, strings.TrimLeft(line, " \t"))
	}
	return &Paragraph{Inlines: p.inline(joinParagraph(text))}, i
}

func joinParagraph(lines []string) string {
	return strings.TrimRight(strings.Join(lines, "\n"), " \t")
}

// atxHeading parses "# text", stripping an optional closing run of #.
func atxHeading(line string) (level int, text string, ok bool) {
	cols, n := indentation(line)
	if cols > 3 {
		return 0, "", false
	}
	s := line[n:]
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := s[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	rest = strings.Trim(rest, " \t")
	trimmed := strings.TrimRight(rest, "#")
	switch {
	case trimmed == "":
		rest = ""
	case trimmed[len(trimmed)-1] == ' ' || trimmed[len(trimmed)-1] == '\t':
		rest = strings.TrimRight(trimmed, " \t")
	}
	return level, rest, true
}

// setextLevel returns 1 for an === underline, 2 for ---, and 0 otherwise.
func setextLevel(line string) int {
	cols, n := indentation(line)
	if cols > 3 || n >= len(line) {
		return 0
	}
	c := line[n]
	if c != '=' && c != '-' {
		return 0
	}
	s := strings.TrimRight(line[n:], " \t")
	if strings.Trim(s, string(c)) != "" {
		return 0
	}
	if c == '=' {
		return 1
	}
	return 2
}

// isThematicBreak matches three or more -, * or _ with optional spaces.
func isThematicBreak(line string) bool {
	cols, n := indentation(line)
	if cols > 3 || n >= len(line) {
		return false
	}
	c := line[n]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	count := 0
	for i := n; i < len(line); i++ {
		switch line[i] {
		case c:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

func (p *blockParser) quoteMarker(line string, depth int) (string, bool) {
	if depth >= MaxNestingDepth {
		return "", false
	}
	cols, n := indentation(line)
	if cols > 3 || n >= len(line) || line[n] != '>' {
		return "", false
	}
	rest := line[n+1:]
	if rest != "" && rest[0] == ' ' {
		rest = rest[1:]
	} else if rest != "" && rest[0] == '\t' {
		rest = stripColumns(rest, 1)
	}
	return rest, true
}

func (p *blockParser) blockquote(lines []string, depth int) (Block, int) {
	var inner []string
	para := newParagraphTracker(p, depth+1)
	i := 0
	for ; i < len(lines); i++ {
		if rest, ok := p.quoteMarker(lines[i], depth); ok {
			inner = append(inner, rest)
			para.add(rest)
			continue
		}
		// Lazy continuation: an unmarked line continues a quoted paragraph.
		if para.open() && !isBlank(lines[i]) && !p.interruptsParagraph(lines[i], depth) {
			if _, ok := p.listMarker(lines[i], depth); !ok {
				inner = append(inner, lines[i])
				para.add(lines[i])
				continue
			}
		}
		break
	}
	return &Blockquote{Blocks: p.parse(inner, depth+1)}, i
}

// fence describes an opening code fence.
type fence struct {
	char   byte
	n      int
	indent int
	lang   string
}

func (p *blockParser) fenceStart(line string) (fence, bool) {
	if !p.ext.FencedCode {
		return fence{}, false
	}
	cols, k := indentation(line)
	if cols > 3 || k >= len(line) {
		return fence{}, false
	}
	c := line[k]
	if c != '`' && c != '~' {
		return fence{}, false
	}
	n := 0
	for k+n < len(line) && line[k+n] == c {
		n++
	}
	if n < 3 {
		return fence{}, false
	}
	info := strings.Trim(line[k+n:], " \t")
	if c == '`' && strings.IndexByte(info, '`') >= 0 {
		return fence{}, false
	}
	return fence{char: c, n: n, indent: cols, lang: fenceLanguage(info)}, true
}

// fenceLanguage returns the first word of a fence info string when it is a
// valid language tag ([A-Za-z0-9_+-]), and "" otherwise.
func fenceLanguage(info string) string {
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		info = info[:i]
	}
	for i := 0; i < len(info); i++ {
		c := info[i]
		if !isAlnum(c) && c != '_' && c != '+' && c != '-' {
			return ""
		}
	}
	return info
}

func (f fence) closes(line string) bool {
	cols, k := indentation(line)
	if cols > 3 {
		return false
	}
	n := 0
	for k+n < len(line) && line[k+n] == f.char {
		n++
	}
	return n >= f.n && isBlank(line[k+n:])
}

// fencedCode consumes lines up to and including the closing fence. An
// unterminated fence runs to the end of its container.
func fencedCode(lines []string, f fence) (Block, int) {
	var code strings.Builder
	i := 1
	for ; i < len(lines); i++ {
		if f.closes(lines[i]) {
			i++
			break
		}
		code.WriteString(stripColumns(lines[i], f.indent))
		code.WriteByte('\n')
	}
	return &CodeBlock{Language: f.lang, Text: code.String()}, i
}

func indentedCode(lines []string) (Block, int) {
	var code []string
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if !isBlank(line) {
			if cols, _ := indentation(line); cols < 4 {
				break
			}
		}
		code = append(code, stripColumns(line, 4))
	}
	for len(code) > 0 && isBlank(code[len(code)-1]) {
		code = code[:len(code)-1]
	}
	return &CodeBlock{Text: strings.Join(code, "\n") + "\n"}, i
}
