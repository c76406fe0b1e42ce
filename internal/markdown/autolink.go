package markdown

import "strings"

var autoLinkPrefixes = []string{"https://", "http://", "www.", "mailto:"}

// atWordStart reports whether a bare autolink may begin at s[i]: at the
// start of the text, after whitespace, or after an opening delimiter.
func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	switch s[i-1] {
	case ' ', '\t', '\n', '*', '_', '~', '(', '[', '"', '\'':
		return true
	}
	return false
}

// autoLink recognizes a bare URL or email address at s[i].
func (p *inlineParser) autoLink(i int) (int, Inline, bool) {
	s := p.s
	for _, prefix := range autoLinkPrefixes {
		k := i + len(prefix)
		if k >= len(s) || !hasPrefixFold(s[i:], prefix) || !isAlnum(s[k]) {
			continue
		}
		end := trimURLTail(s, i, scanURL(s, k))
		if end <= k {
			return 0, nil, false
		}
		return end, &AutoLink{URL: s[i:end]}, true
	}

	end, ok := scanEmail(s, i)
	if !ok {
		p.noAutoLink = end
		return 0, nil, false
	}
	return end, &AutoLink{URL: s[i:end], Email: true}, true
}

func scanURL(s string, i int) int {
	for i < len(s) && s[i] > ' ' && s[i] != '<' && s[i] != 0x7f {
		i++
	}
	return i
}

// trimURLTail drops trailing punctuation from the URL s[start:end] and a
// closing paren that has no opener inside the URL.
func trimURLTail(s string, start, end int) int {
	open := strings.Count(s[start:end], "(")
	closed := strings.Count(s[start:end], ")")
	for end > start {
		c := s[end-1]
		if strings.IndexByte(`?!.,:;*_~'"`, c) >= 0 {
			end--
			continue
		}
		if c == ')' && open < closed {
			closed--
			end--
			continue
		}
		break
	}
	return end
}

// scanEmail matches local@domain.tld at s[i]. On failure the returned
// offset is where scanning stopped, so no email can start before it.
func scanEmail(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isEmailLocal(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '@' {
		return j, false
	}
	end := scanDomain(s, j+1)
	if end == 0 {
		return j + 1, false
	}
	return end, true
}

// scanDomain matches dot-separated labels of letters, digits and hyphens
// starting at s[i], with at least one dot. A trailing dot or hyphen is not
// part of the domain. It returns 0 when there is no domain.
func scanDomain(s string, i int) int {
	j := i
	for j < len(s) && (isAlnum(s[j]) || s[j] == '-' || s[j] == '.') {
		j++
	}
	for j > i && (s[j-1] == '.' || s[j-1] == '-') {
		j--
	}
	domain := s[i:j]
	if !strings.Contains(domain, ".") || strings.Contains(domain, "..") || domain[0] == '.' {
		return 0
	}
	return j
}

func isEmailLocal(c byte) bool {
	return isAlnum(c) || c == '.' || c == '_' || c == '+' || c == '-'
}

func isEmail(s string) bool {
	end, ok := scanEmail(s, 0)
	return ok && end == len(s)
}

// angleAutoLink recognizes <http://...>, <https://...>, <mailto:...> and
// <user@example.com> at s[i] == '<'.
func angleAutoLink(s string, i int) (int, Inline, bool) {
	k := i + 1
	for k < len(s) && s[k] > ' ' && s[k] != '<' && s[k] != '>' && s[k] != 0x7f {
		k++
	}
	if k >= len(s) || s[k] != '>' || k == i+1 {
		return 0, nil, false
	}
	body := s[i+1 : k]
	for _, scheme := range []string{"http://", "https://", "mailto:"} {
		if hasPrefixFold(body, scheme) && len(body) > len(scheme) {
			return k + 1, &AutoLink{URL: body}, true
		}
	}
	if isEmail(body) {
		return k + 1, &AutoLink{URL: body, Email: true}, true
	}
	return 0, nil, false
}
