// Package sanitize enforces the tag, attribute and URL allowlist on
// rendered HTML.
//
// Sanitize is the only way to obtain a non-empty Fragment. It runs two
// passes: the first rewrites href and src values whose scheme, after
// decoding, is anything but http, https or mailto; the second is a
// bluemonday policy that drops every element and attribute outside the
// allowlist and re-serializes the remaining tokens. Both passes are
// idempotent, so Sanitize(Unsanitized(f.String())) == f.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-safemd/internal/highlight"
)

// Elements lists the tags that may appear in a Fragment.
var Elements = []string{
	"p", "h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "blockquote",
	"table", "thead", "tbody", "tr", "th", "td",
	"hr", "br", "em", "strong", "del", "sup",
	"pre", "code", "span", "a", "img",
}

var (
	languagePattern = regexp.MustCompile(`^[A-Za-z0-9_+-]+$`)
	numberPattern   = regexp.MustCompile(`^[0-9]{1,9}$`)
	alignPattern    = regexp.MustCompile(`^(left|center|right)$`)
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(Elements...)

	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowAttrs("class").Matching(languagePattern).OnElements("code")
	p.AllowAttrs("class").Matching(classPattern()).OnElements("span")
	p.AllowAttrs("start").Matching(numberPattern).OnElements("ol")
	p.AllowAttrs("align").Matching(alignPattern).OnElements("th", "td")

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return p
}

// classPattern matches exactly one highlight token class.
func classPattern() *regexp.Regexp {
	alt := ""
	for i, c := range highlight.Classes {
		if i > 0 {
			alt += "|"
		}
		alt += regexp.QuoteMeta(string(c))
	}
	return regexp.MustCompile(`^(` + alt + `)$`)
}

// Sanitize returns the allowlisted subset of fragment. Disallowed elements
// are removed and their text kept; disallowed attributes are removed;
// links and images with a disallowed URL scheme point to "#".
func Sanitize(fragment Unsanitized) Fragment {
	if fragment == "" {
		return Fragment{}
	}
	return Fragment{html: policy.Sanitize(rewriteURLs(string(fragment)))}
}
