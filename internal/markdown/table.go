package markdown

import "strings"

// table parses a header row, a delimiter row, and the body rows that
// follow. The header fixes the column count: short rows are padded with
// empty cells and extra cells are dropped.
func (p *blockParser) table(lines []string, depth int) (Block, int, bool) {
	if !p.ext.Tables || len(lines) < 2 || strings.IndexByte(lines[0], '|') < 0 {
		return nil, 0, false
	}
	align, ok := parseDelimiterRow(lines[1])
	if !ok {
		return nil, 0, false
	}
	header := splitRow(lines[0])
	if len(header) != len(align) {
		return nil, 0, false
	}

	t := &Table{Align: align, Header: make([][]Inline, len(header))}
	for j, cell := range header {
		t.Header[j] = p.inline(cell)
	}

	i := 2
	for ; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) || strings.IndexByte(line, '|') < 0 || p.interruptsParagraph(line, depth) {
			break
		}
		cells := splitRow(line)
		row := make([][]Inline, len(align))
		for j := range row {
			if j < len(cells) {
				row[j] = p.inline(cells[j])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, i, true
}

// parseDelimiterRow parses a row such as "| :--- | :-: | --: |".
func parseDelimiterRow(line string) ([]Align, bool) {
	if strings.IndexByte(line, '|') < 0 {
		return nil, false
	}
	cells := splitRow(line)
	align := make([]Align, len(cells))
	for j, c := range cells {
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":")
		dashes := strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			align[j] = AlignCenter
		case left:
			align[j] = AlignLeft
		case right:
			align[j] = AlignRight
		}
	}
	return align, true
}

// splitRow splits a table row on unescaped pipes, dropping one optional
// leading and trailing pipe. An escaped pipe (\|) is kept as a literal |.
func splitRow(line string) []string {
	s := strings.Trim(line, " \t")
	s = strings.TrimPrefix(s, "|")
	if strings.HasSuffix(s, "|") && !strings.HasSuffix(s, `\|`) {
		s = s[:len(s)-1]
	}

	var cells []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '|':
			cells = append(cells, cleanCell(s[start:i]))
			start = i + 1
		}
	}
	return append(cells, cleanCell(s[start:]))
}

func cleanCell(cell string) string {
	return strings.ReplaceAll(strings.Trim(cell, " \t"), `\|`, "|")
}
