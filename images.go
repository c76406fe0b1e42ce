package safemd

import (
	"strings"

	"github.com/alnah/go-safemd/internal/markdown"
)

// ExtractImageURLs returns the URL of every ![alt](url) image in text, in
// document order and including duplicates. URLs are not validated: the
// list describes what the source references, not what renders.
func ExtractImageURLs(text string) []string {
	return markdown.ExtractImageURLs(text)
}

// ImageMarkdown returns the Markdown image reference for url, suitable for
// appending to raw text after an upload. A URL containing whitespace or
// parentheses is written in <angle> form so it parses back unchanged.
func ImageMarkdown(url string) string {
	url = strings.NewReplacer("\r", "", "\n", "").Replace(url)
	if !strings.ContainsAny(url, " \t()<>") {
		return "![](" + url + ")"
	}
	esc := strings.NewReplacer(`\`, `\\`, "<", `\<`, ">", `\>`)
	return "![](<" + esc.Replace(url) + ">)"
}
