package markdown

// ExtractImageURLs returns the destinations of every ![alt](url) image in
// text, in document order and including duplicates. Destinations are
// captured with the same rules as inline links and are not validated.
func ExtractImageURLs(text string) []string {
	s := normalize(text)
	var urls []string
	var open []bool // unmatched [ openers; true for ![
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\n':
			if isBlankLineAt(s, i+1) {
				open = open[:0]
			}
		case '[':
			if len(open) < maxDelimiters {
				open = append(open, i > 0 && s[i-1] == '!' && !escaped(s, i-1))
			}
		case ']':
			if len(open) == 0 {
				continue
			}
			image := open[len(open)-1]
			open = open[:len(open)-1]
			if !image {
				continue
			}
			if dest, _, end, ok := parseLinkTail(s, i+1); ok {
				urls = append(urls, dest)
				i = end - 1
			}
		}
	}
	return urls
}

// isBlankLineAt reports whether the line starting at s[i] is blank.
func isBlankLineAt(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t':
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// escaped reports whether s[i] is preceded by an odd number of backslashes.
func escaped(s string, i int) bool {
	n := 0
	for i > 0 && s[i-1] == '\\' {
		n++
		i--
	}
	return n%2 == 1
}
