package safemd

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInputTooLarge is returned when the Markdown source exceeds the
	// renderer's byte limit. It is checked before any parsing.
	ErrInputTooLarge = errors.New("markdown input too large")
)
