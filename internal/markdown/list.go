package markdown

import (
	"strconv"
	"strings"
)

// listMarker describes the marker that opens a list item.
type listMarker struct {
	ordered bool
	char    byte // bullet character, or '.' / ')' for ordered items
	start   int
	width   int    // columns from the line start to the item content
	content string // first line of the item, marker removed
	empty   bool
}

// sameList reports whether m continues a list opened by first: bullets must
// use the same character and ordered items the same delimiter.
func (m listMarker) sameList(first listMarker) bool {
	return m.ordered == first.ordered && m.char == first.char
}

func (p *blockParser) listMarker(line string, depth int) (listMarker, bool) {
	if depth >= MaxNestingDepth {
		return listMarker{}, false
	}
	cols, n := indentation(line)
	if cols > 3 || n >= len(line) {
		return listMarker{}, false
	}
	s := line[n:]
	var m listMarker
	j := 0
	switch c := s[0]; {
	case c == '-' || c == '*' || c == '+':
		m.char = c
		j = 1
	case isDigit(c):
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > 9 || j >= len(s) || (s[j] != '.' && s[j] != ')') {
			return listMarker{}, false
		}
		m.ordered = true
		m.start, _ = strconv.Atoi(s[:j])
		m.char = s[j]
		j++
	default:
		return listMarker{}, false
	}

	after := s[j:]
	if isBlank(after) {
		m.empty = true
		m.width = cols + j + 1
		return m, true
	}
	if after[0] != ' ' && after[0] != '\t' {
		return listMarker{}, false
	}
	spaces, _ := indentation(after)
	if spaces > 4 {
		// Content indented this far is an indented code block; the item
		// content starts one column after the marker.
		spaces = 1
	}
	m.width = cols + j + spaces
	m.content = stripColumns(after, spaces)
	return m, true
}

// list consumes consecutive items whose markers belong to the same list.
func (p *blockParser) list(lines []string, first listMarker, depth int) (Block, int) {
	list := &List{Ordered: first.ordered, Start: first.start, Tight: true}
	i := 0
	for i < len(lines) {
		if isThematicBreak(lines[i]) {
			break
		}
		m, ok := p.listMarker(lines[i], depth)
		if !ok || !m.sameList(first) {
			break
		}
		itemLines, n, trailingBlank := p.listItem(lines[i:], m, depth)
		i += n

		blocks := p.parse(itemLines, depth+1)
		if len(blocks) > 1 && hasInnerBlank(itemLines) {
			list.Tight = false
		}
		list.Items = append(list.Items, &ListItem{Blocks: blocks})

		if trailingBlank && i < len(lines) {
			if next, ok := p.listMarker(lines[i], depth); ok && next.sameList(first) && !isThematicBreak(lines[i]) {
				list.Tight = false
			}
		}
	}
	return list, i
}

// listItem collects the lines belonging to the item opened by m, with the
// item indentation removed. trailingBlank reports whether the item was
// followed by blank lines, which are consumed.
func (p *blockParser) listItem(lines []string, m listMarker, depth int) (item []string, n int, trailingBlank bool) {
	item = []string{m.content}
	para := newParagraphTracker(p, depth+1)
	para.add(m.content)
	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) {
			item = append(item, "")
			para.add("")
			continue
		}
		if cols, _ := indentation(line); cols >= m.width {
			rest := stripColumns(line, m.width)
			item = append(item, rest)
			para.add(rest)
			continue
		}
		if _, ok := p.listMarker(line, depth); ok {
			break
		}
		// Lazy continuation of the item's open paragraph.
		if para.open() && !p.interruptsParagraph(line, depth) {
			rest := strings.TrimLeft(line, " \t")
			item = append(item, rest)
			para.add(rest)
			continue
		}
		break
	}
	for len(item) > 1 && item[len(item)-1] == "" {
		item = item[:len(item)-1]
		trailingBlank = true
	}
	return item, i, trailingBlank
}

// hasInnerBlank reports whether a blank line separates two non-blank lines.
func hasInnerBlank(lines []string) bool {
	seenText, seenBlank := false, false
	for _, l := range lines {
		if isBlank(l) {
			seenBlank = seenText
			continue
		}
		if seenBlank {
			return true
		}
		seenText = true
	}
	return false
}
