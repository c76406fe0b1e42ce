package markdown

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// maxDelimiters bounds the emphasis delimiter runs and open brackets kept
// per inline span. Markers past the bound are literal text.
const maxDelimiters = 1000

// ParseInline parses the text of a leaf block into inline nodes.
func ParseInline(text string, ext Extensions) []Inline {
	p := &inlineParser{s: text, ext: ext, ticks: indexBackticks(text)}
	return p.parse()
}

type inlineParser struct {
	ext     Extensions
	s       string
	emitted int // s[:emitted] has been turned into nodes
	list    []Inline

	brackets    []*bracket
	activeLinks int // unmatched, still active [ openers
	delims      int

	ticks      backtickIndex
	noAutoLink int // no autolink can start before this offset
}

// bracket is an unmatched [ or ![ awaiting its ].
type bracket struct {
	pos    int // index of the opener text node in list
	image  bool
	active bool
}

// flush turns pending literal text up to i into a Text node.
func (p *inlineParser) flush(i int) {
	if p.emitted < i {
		p.list = append(p.list, &Text{Text: p.s[p.emitted:i]})
	}
	p.emitted = i
}

// push appends x for the source range [start, end) and returns end.
func (p *inlineParser) push(start, end int, x Inline) int {
	p.flush(start)
	p.list = append(p.list, x)
	p.emitted = end
	return end
}

func (p *inlineParser) parse() []Inline {
	s := p.s
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) && s[i+1] == '\n' {
				i = p.push(i, skipLineIndent(s, i+2), &LineBreak{})
				continue
			}
			if i+1 < len(s) && util.IsPunct(s[i+1]) {
				i = p.push(i, i+2, &Text{Text: s[i+1 : i+2]})
				continue
			}
		case '\n':
			i = p.newline(i)
			continue
		case '`':
			i = p.codeSpan(i)
			continue
		case '&':
			if end, text, ok := parseEntity(s, i); ok {
				i = p.push(i, end, &Text{Text: text})
				continue
			}
		case '*', '_':
			i = p.delimiter(i, c)
			continue
		case '~':
			if p.ext.Strikethrough {
				i = p.delimiter(i, c)
				continue
			}
		case '^':
			if p.ext.Superscript {
				if end, x, ok := p.superscript(i); ok {
					i = p.push(i, end, x)
					continue
				}
			}
		case '[':
			if len(p.brackets) < maxDelimiters {
				i = p.openBracket(i, false)
				continue
			}
		case '!':
			if i+1 < len(s) && s[i+1] == '[' && len(p.brackets) < maxDelimiters {
				i = p.openBracket(i, true)
				continue
			}
		case ']':
			if end, ok := p.closeBracket(i); ok {
				i = end
				continue
			}
		case '<':
			if p.activeLinks == 0 {
				if end, x, ok := angleAutoLink(s, i); ok {
					i = p.push(i, end, x)
					continue
				}
			}
		default:
			if p.ext.Autolink && p.activeLinks == 0 && i >= p.noAutoLink && isAlnum(c) && atWordStart(s, i) {
				if end, x, ok := p.autoLink(i); ok {
					i = p.push(i, end, x)
					continue
				}
			}
		}
		i++
	}
	p.flush(len(s))
	return resolveEmphasis(p.list)
}

// newline handles a line ending inside a paragraph. Two or more trailing
// spaces, or the hard-wrap extension, make it a line break; otherwise it
// stays a soft newline in the text.
func (p *inlineParser) newline(i int) int {
	j := i
	for j > p.emitted && p.s[j-1] == ' ' {
		j--
	}
	next := skipLineIndent(p.s, i+1)
	if i-j >= 2 || p.ext.HardWrap {
		return p.push(j, next, &LineBreak{})
	}
	return p.push(j, next, &Text{Text: "\n"})
}

func skipLineIndent(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// codeSpan matches a backtick run with the next run of the same length.
// An unmatched run is literal text.
func (p *inlineParser) codeSpan(i int) int {
	n := runLength(p.s, i, '`')
	closer, ok := p.ticks.closer(i, n)
	if !ok {
		return i + n
	}
	code := strings.ReplaceAll(p.s[i+n:closer], "\n", " ")
	if len(code) >= 2 && code[0] == ' ' && code[len(code)-1] == ' ' && strings.Trim(code, " ") != "" {
		code = code[1 : len(code)-1]
	}
	return p.push(i, closer+n, &CodeSpan{Code: code})
}

func (p *inlineParser) delimiter(i int, c byte) int {
	n := runLength(p.s, i, c)
	end := i + n
	if (c == '~' && n != 2) || p.delims >= maxDelimiters {
		return end
	}
	before, after := runeBefore(p.s, i), runeAt(p.s, end)
	left, right := flanking(before, after)
	d := &delimRun{ch: c, text: p.s[i:end], n: n}
	if c == '_' {
		// No intra-word emphasis with underscores.
		d.canOpen = left && (!right || util.IsPunctRune(before))
		d.canClose = right && (!left || util.IsPunctRune(after))
	} else {
		d.canOpen, d.canClose = left, right
	}
	if !d.canOpen && !d.canClose {
		return end
	}
	p.delims++
	return p.push(i, end, d)
}

// superscript parses ^text. The text ends at whitespace, the end of the
// span, or an unescaped ^, which is consumed as the closing marker.
// Superscripts do not nest.
func (p *inlineParser) superscript(i int) (int, Inline, bool) {
	s := p.s
	j := i + 1
	for j < len(s) && s[j] != '^' && s[j] != ' ' && s[j] != '\t' && s[j] != '\n' {
		if s[j] == '\\' && j+1 < len(s) {
			j++
		}
		j++
	}
	if j == i+1 {
		return 0, nil, false
	}
	end := j
	if j < len(s) && s[j] == '^' {
		end = j + 1
	}
	ext := p.ext
	ext.Superscript = false
	return end, &Superscript{Children: ParseInline(s[i+1:j], ext)}, true
}

func (p *inlineParser) openBracket(i int, image bool) int {
	end := i + 1
	text := "["
	if image {
		end, text = i+2, "!["
	} else {
		p.activeLinks++
	}
	p.flush(i)
	p.brackets = append(p.brackets, &bracket{pos: len(p.list), image: image, active: true})
	return p.push(i, end, &Text{Text: text})
}

// closeBracket closes the innermost open bracket when ] is followed by a
// valid (destination "title") tail. Links do not contain other links: once a
// link closes, every enclosing [ opener becomes literal.
func (p *inlineParser) closeBracket(i int) (int, bool) {
	if len(p.brackets) == 0 {
		return 0, false
	}
	b := p.brackets[len(p.brackets)-1]
	p.brackets = p.brackets[:len(p.brackets)-1]
	if !b.image && b.active {
		p.activeLinks--
	}
	if !b.active {
		return 0, false
	}
	dest, title, end, ok := parseLinkTail(p.s, i+1)
	if !ok {
		return 0, false
	}

	p.flush(i)
	children := resolveEmphasis(p.list[b.pos+1:])
	var x Inline
	if b.image {
		x = &Image{Src: dest, Alt: PlainText(children), Title: title}
	} else {
		x = &Link{Href: dest, Title: title, Children: children}
		for _, o := range p.brackets {
			if !o.image {
				o.active = false
			}
		}
		p.activeLinks = 0
	}
	p.list = append(p.list[:b.pos], x)
	p.emitted = end
	return end, true
}

func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}

// parseEntity decodes an HTML entity or numeric character reference at
// s[i] == '&'. Unknown names are not entities.
func parseEntity(s string, i int) (int, string, bool) {
	j := i + 1
	if j < len(s) && s[j] == '#' {
		j++
		hex := j < len(s) && (s[j] == 'x' || s[j] == 'X')
		if hex {
			j++
		}
		start := j
		for j < len(s) && j-start < 7 && (isDigit(s[j]) || hex && isHexDigit(s[j])) {
			j++
		}
		if j == start {
			return 0, "", false
		}
	} else {
		start := j
		for j < len(s) && j-start < 32 && isAlnum(s[j]) {
			j++
		}
		if j == start {
			return 0, "", false
		}
	}
	if j >= len(s) || s[j] != ';' {
		return 0, "", false
	}
	raw := s[i : j+1]
	decoded := string(util.ResolveEntityNames(util.ResolveNumericReferences([]byte(raw))))
	if decoded == raw {
		return 0, "", false
	}
	return j + 1, decoded, true
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// backtickIndex locates backtick runs so that every code span opener finds
// its closer in constant time.
type backtickIndex struct {
	runs   []tickRun
	next   []int // next[k] is the index of the next run as long as runs[k], or -1
	cursor int
}

type tickRun struct {
	pos, n int
}

func indexBackticks(s string) backtickIndex {
	var idx backtickIndex
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		n := runLength(s, i, '`')
		idx.runs = append(idx.runs, tickRun{pos: i, n: n})
		i += n
	}
	idx.next = make([]int, len(idx.runs))
	last := make(map[int]int)
	for k := len(idx.runs) - 1; k >= 0; k-- {
		r := idx.runs[k]
		if j, ok := last[r.n]; ok {
			idx.next[k] = j
		} else {
			idx.next[k] = -1
		}
		last[r.n] = k
	}
	return idx
}

// closer returns the position of the run closing the n-backtick run at i.
// Runs must be queried in increasing position order.
func (idx *backtickIndex) closer(i, n int) (int, bool) {
	for idx.cursor < len(idx.runs) && idx.runs[idx.cursor].pos < i {
		idx.cursor++
	}
	if idx.cursor >= len(idx.runs) {
		return 0, false
	}
	r := idx.runs[idx.cursor]
	if r.pos != i || r.n != n {
		// The run was partly consumed by a backslash escape.
		return 0, false
	}
	k := idx.next[idx.cursor]
	if k < 0 {
		return 0, false
	}
	return idx.runs[k].pos, true
}
