package markdown

// paragraphTracker follows the lines collected for a container and reports
// whether the last one left paragraph text open. Only an open paragraph
// accepts lazy continuation lines.
//
// Nested quotes and list items get a child tracker, so the cost per line is
// bounded by MaxNestingDepth.
type paragraphTracker struct {
	p     *blockParser
	depth int

	para    bool
	inFence bool
	fence   fence

	child      *paragraphTracker
	childWidth int // item content column for a list child, 0 for a quote
}

func newParagraphTracker(p *blockParser, depth int) *paragraphTracker {
	return &paragraphTracker{p: p, depth: depth}
}

// open reports whether a lazy line would continue a paragraph.
func (t *paragraphTracker) open() bool {
	return t.para
}

func (t *paragraphTracker) add(line string) {
	if t.inFence {
		if t.fence.closes(line) {
			t.inFence = false
		}
		t.para = false
		return
	}

	if isBlank(line) {
		t.para = false
		if t.child != nil && t.childWidth > 0 {
			t.child.add("")
		} else {
			t.child = nil
		}
		return
	}

	if t.child != nil && t.childWidth > 0 {
		if cols, _ := indentation(line); cols >= t.childWidth {
			t.child.add(stripColumns(line, t.childWidth))
			t.para = t.child.para
			return
		}
	}

	if t.para {
		if setextLevel(line) > 0 {
			t.para, t.child = false, nil
			return
		}
		if !t.p.interruptsParagraph(line, t.depth) {
			return
		}
	}

	t.child, t.childWidth = nil, 0
	if f, ok := t.p.fenceStart(line); ok {
		t.fence, t.inFence, t.para = f, true, false
		return
	}
	if _, _, ok := atxHeading(line); ok {
		t.para = false
		return
	}
	if isThematicBreak(line) {
		t.para = false
		return
	}
	if rest, ok := t.p.quoteMarker(line, t.depth); ok {
		t.child = newParagraphTracker(t.p, t.depth+1)
		t.child.add(rest)
		t.para = t.child.para
		return
	}
	if m, ok := t.p.listMarker(line, t.depth); ok {
		t.child = newParagraphTracker(t.p, t.depth+1)
		t.childWidth = m.width
		if !m.empty {
			t.child.add(m.content)
		}
		t.para = t.child.para
		return
	}
	if cols, _ := indentation(line); cols >= 4 {
		t.para = false
		return
	}
	t.para = true
}
