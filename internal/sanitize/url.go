package sanitize

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// neutralURL replaces any href or src whose scheme is not allowed.
const neutralURL = "#"

// maxDecodeRounds bounds how many layers of entity and percent encoding are
// peeled off before the scheme is checked.
const maxDecodeRounds = 3

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// rewriteURLs re-serializes fragment, passing every href and src value
// through cleanURL.
func rewriteURLs(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF is the only error a strings.Reader produces.
			return b.String()
		}
		tok := z.Token()
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			neutralized := false
			for i, a := range tok.Attr {
				if a.Key == "href" || a.Key == "src" {
					var rejected bool
					tok.Attr[i].Val, rejected = cleanURL(a.Val)
					neutralized = neutralized || rejected
				}
			}
			if neutralized && tok.Data == "a" {
				tok.Attr = dropAttr(tok.Attr, "title")
			}
		}
		b.WriteString(tok.String())
	}
}

// dropAttr removes every attribute named key. A link whose href was
// neutralized loses its title so the sanitizer unwraps it.
func dropAttr(attrs []html.Attribute, key string) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	return kept
}

// cleanURL returns neutralURL and true when raw names a scheme other than
// http, https or mailto once whitespace, control characters, HTML entities
// and percent escapes are removed. Otherwise it returns raw trimmed, with
// inner whitespace and control characters percent-encoded.
func cleanURL(raw string) (string, bool) {
	if scheme, ok := urlScheme(raw); ok && !allowedSchemes[scheme] {
		return neutralURL, true
	}
	return encodeControls(strings.TrimFunc(raw, isSpaceOrControl)), false
}

// urlScheme returns the lowercased scheme of the normalized URL, if any.
func urlScheme(raw string) (string, bool) {
	s := raw
	for range maxDecodeRounds {
		prev := s
		s = stripSpaceAndControls(html.UnescapeString(s))
		if u, err := url.PathUnescape(s); err == nil {
			s = u
		}
		if s == prev {
			break
		}
	}
	s = stripSpaceAndControls(s)

	end := strings.IndexAny(s, "/?#")
	if end < 0 {
		end = len(s)
	}
	colon := strings.IndexByte(s[:end], ':')
	if colon < 0 {
		return "", false
	}
	return strings.ToLower(s[:colon]), true
}

func isSpaceOrControl(r rune) bool {
	switch {
	case r <= ' ', r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	case r >= '\u2000' && r <= '\u200f':
		return true
	}
	switch r {
	case '\u00a0', '\u2028', '\u2029', '\u3000', '\ufeff':
		return true
	}
	return false
}

func stripSpaceAndControls(s string) string {
	if strings.IndexFunc(s, isSpaceOrControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isSpaceOrControl(r) {
			return -1
		}
		return r
	}, s)
}

func encodeControls(s string) string {
	if strings.IndexFunc(s, isSpaceOrControl) < 0 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if !isSpaceOrControl(r) {
			b.WriteRune(r)
			continue
		}
		for _, c := range []byte(string(r)) {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
