package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/util"
)

// delimRun is a run of *, _ or ~ that may open or close emphasis. It lives
// in the node list only until resolveEmphasis replaces it.
type delimRun struct {
	ch       byte
	text     string // delimiters not yet used by a match
	n        int    // length of the original run
	canOpen  bool
	canClose bool
	pos      int // index in the output list while on an opener stack
}

func (*delimRun) inline() {}

// flanking applies the left/right-flanking tests to the characters around a
// delimiter run. The start and end of the text count as whitespace.
func flanking(before, after rune) (left, right bool) {
	left = !util.IsSpaceRune(after) &&
		(!util.IsPunctRune(after) || util.IsSpaceRune(before) || util.IsPunctRune(before))
	right = !util.IsSpaceRune(before) &&
		(!util.IsPunctRune(before) || util.IsSpaceRune(after) || util.IsPunctRune(after))
	return left, right
}

func runeBefore(s string, i int) rune {
	if i == 0 {
		return ' '
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

func runeAt(s string, i int) rune {
	if i >= len(s) {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

func stackIndex(c byte) int {
	switch c {
	case '*':
		return 0
	case '_':
		return 1
	default:
		return 2
	}
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// canMatch applies the rule of three: when either side could both open and
// close, the combined run length must not be a multiple of three unless
// both lengths are.
func canMatch(opener, closer *delimRun) bool {
	if closer.ch == '~' {
		return true
	}
	if closer.canOpen || opener.canClose {
		sum := opener.n + closer.n
		if sum%3 == 0 && (opener.n%3 != 0 || closer.n%3 != 0) {
			return false
		}
	}
	return true
}

// resolveEmphasis pairs delimiter runs in src into Emphasis, Strong and
// Strikethrough nodes. Unmatched delimiters become literal text. The
// result never aliases src.
//
// Each closer searches its opener stack from the top down to a floor;
// a failed search raises the floor for closers of the same kind so no
// opener is examined twice by failing searches.
func resolveEmphasis(src []Inline) []Inline {
	dst := make([]Inline, 0, len(src))
	var stacks [3][]*delimRun
	var floors [3][3][2]int

	for _, x := range src {
		d, ok := x.(*delimRun)
		if !ok {
			dst = append(dst, x)
			continue
		}
		k := stackIndex(d.ch)
		stk := &stacks[k]
		for d.canClose && d.text != "" {
			floor := &floors[k][d.n%3][boolIndex(d.canOpen)]
			if *floor > len(*stk) {
				*floor = len(*stk)
			}
			j := len(*stk) - 1
			for ; j >= *floor; j-- {
				if canMatch((*stk)[j], d) {
					break
				}
			}
			if j < *floor {
				*floor = len(*stk)
				break
			}

			o := (*stk)[j]
			use := 1
			if d.ch == '~' || len(o.text) >= 2 && len(d.text) >= 2 {
				use = 2
			}
			children := mergeText(dst[o.pos+1:])
			o.text = o.text[:len(o.text)-use]
			d.text = d.text[use:]
			if o.text == "" {
				dst = dst[:o.pos]
				*stk = (*stk)[:j]
			} else {
				dst = dst[:o.pos+1]
				*stk = (*stk)[:j+1]
			}
			for s := range stacks {
				for len(stacks[s]) > 0 && stacks[s][len(stacks[s])-1].pos >= len(dst) {
					stacks[s] = stacks[s][:len(stacks[s])-1]
				}
				clampFloors(&floors[s], len(stacks[s]))
			}
			dst = append(dst, wrapEmphasis(d.ch, use, children))
		}

		switch {
		case d.text == "":
		case d.canOpen:
			d.pos = len(dst)
			dst = append(dst, d)
			*stk = append(*stk, d)
		default:
			dst = append(dst, &Text{Text: d.text})
		}
	}
	return mergeText(dst)
}

func clampFloors(f *[3][2]int, n int) {
	for i := range f {
		for j := range f[i] {
			f[i][j] = min(f[i][j], n)
		}
	}
}

func wrapEmphasis(c byte, use int, children []Inline) Inline {
	switch {
	case c == '~':
		return &Strikethrough{Children: children}
	case use == 2:
		return &Strong{Children: children}
	default:
		return &Emphasis{Children: children}
	}
}

// mergeText copies list into a new slice, turning leftover delimiter runs
// into text and joining adjacent text nodes.
func mergeText(list []Inline) []Inline {
	out := make([]Inline, 0, len(list))
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, &Text{Text: buf.String()})
			buf.Reset()
		}
	}
	for _, x := range list {
		switch x := x.(type) {
		case *Text:
			buf.WriteString(x.Text)
		case *delimRun:
			buf.WriteString(x.text)
		default:
			flush()
			out = append(out, x)
		}
	}
	flush()
	return out
}
