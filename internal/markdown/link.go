package markdown

import (
	"github.com/yuin/goldmark/util"
)

// maxLinkTail bounds how far past ] the scanner looks for a (destination
// "title") tail.
const maxLinkTail = 4096

// parseLinkTail parses the (destination "title") part of an inline link or
// image starting at s[i]. The destination is either <bracketed> or runs up
// to whitespace or the closing paren, balancing one level of nested parens.
func parseLinkTail(s string, i int) (dest, title string, end int, ok bool) {
	if i >= len(s) || s[i] != '(' {
		return "", "", 0, false
	}
	limit := min(len(s), i+maxLinkTail)
	j := skipLinkSpace(s, i+1, limit)
	if j >= limit {
		return "", "", 0, false
	}

	switch {
	case s[j] == ')':
		return "", "", j + 1, true
	case s[j] == '<':
		k := j + 1
		for ; k < limit && s[k] != '>'; k++ {
			if s[k] == '\n' || s[k] == '<' {
				return "", "", 0, false
			}
			if s[k] == '\\' && k+1 < limit {
				k++
			}
		}
		if k >= limit {
			return "", "", 0, false
		}
		dest = s[j+1 : k]
		j = k + 1
	default:
		depth := 0
		k := j
	scan:
		for ; k < limit; k++ {
			c := s[k]
			switch {
			case c == '\\' && k+1 < limit && util.IsPunct(s[k+1]):
				k++
			case c == '(':
				depth++
				if depth > 1 {
					return "", "", 0, false
				}
			case c == ')':
				if depth == 0 {
					break scan
				}
				depth--
			case c <= ' ' || c == 0x7f:
				break scan
			}
		}
		if depth != 0 {
			return "", "", 0, false
		}
		dest = s[j:k]
		j = k
	}

	k := skipLinkSpace(s, j, limit)
	if k > j && k < limit && (s[k] == '"' || s[k] == '\'' || s[k] == '(') {
		closer := s[k]
		if closer == '(' {
			closer = ')'
		}
		t := k + 1
		for ; t < limit && s[t] != closer; t++ {
			if s[t] == '\\' && t+1 < limit {
				t++
			} else if closer == ')' && s[t] == '(' {
				return "", "", 0, false
			}
		}
		if t >= limit {
			return "", "", 0, false
		}
		title = s[k+1 : t]
		k = skipLinkSpace(s, t+1, limit)
	}
	if k >= limit || s[k] != ')' {
		return "", "", 0, false
	}
	return unescapeLink(dest), unescapeLink(title), k + 1, true
}

// skipLinkSpace skips spaces, tabs and at most one line ending.
func skipLinkSpace(s string, i, limit int) int {
	newline := false
	for i < limit {
		switch s[i] {
		case ' ', '\t':
		case '\n':
			if newline {
				return i
			}
			newline = true
		default:
			return i
		}
		i++
	}
	return i
}

func unescapeLink(s string) string {
	if s == "" {
		return s
	}
	b := util.UnescapePunctuations([]byte(s))
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}
