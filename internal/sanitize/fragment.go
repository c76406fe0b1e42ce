package sanitize

import (
	"html/template"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// Unsanitized is HTML produced by the renderer that has not passed through
// Sanitize. It must never be written to a page as is.
type Unsanitized string

// Fragment is HTML that has passed through Sanitize. Its zero value is the
// empty fragment; no other non-empty value can be constructed outside this
// package.
type Fragment struct {
	html string
}

// String returns the sanitized HTML.
func (f Fragment) String() string {
	return f.html
}

// IsEmpty reports whether the fragment holds no HTML.
func (f Fragment) IsEmpty() bool {
	return f.html == ""
}

// HTML returns the fragment for embedding with html/template without
// further escaping.
func (f Fragment) HTML() template.HTML {
	//nolint:gosec // content passed the allowlist in Sanitize
	return template.HTML(f.html)
}

// SafeHTML returns the fragment as a safehtml.HTML value.
func (f Fragment) SafeHTML() safehtml.HTML {
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(f.html)
}
