package safemd

import (
	"context"
	"fmt"

	"github.com/alnah/go-safemd/internal/markdown"
	"github.com/alnah/go-safemd/internal/render"
	"github.com/alnah/go-safemd/internal/sanitize"
)

// Compile-time interface implementation checks.
var (
	_ CodeRenderer = render.HighlightRenderer{}
	_ CodeRenderer = render.CodeRendererFunc(nil)
)

// DefaultMaxInputSize is the byte limit applied by New unless
// WithMaxInputSize overrides it.
const DefaultMaxInputSize = 1 << 20

// SanitizedFragment is HTML that has passed the sanitizer. Its zero value
// is the empty fragment; the only way to obtain a non-empty one is to
// render Markdown.
type SanitizedFragment = sanitize.Fragment

// CodeRenderer renders the body of a code block. language is empty when
// the block has no language tag. Its output is sanitized with the rest of
// the fragment, so it cannot widen the allowlist.
type CodeRenderer = render.CodeRenderer

// CodeRendererFunc adapts a function to CodeRenderer.
type CodeRendererFunc = render.CodeRendererFunc

// Renderer converts Markdown to sanitized HTML with a fixed set of options.
// Create with New. A Renderer is safe for concurrent use.
type Renderer struct {
	opts     Options
	maxInput int
	html     *render.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOptions sets the Markdown extensions.
func WithOptions(opts Options) Option {
	return func(r *Renderer) {
		r.opts = opts
	}
}

// WithMaxInputSize sets the largest accepted input in bytes.
// Zero or a negative value disables the limit.
func WithMaxInputSize(n int) Option {
	return func(r *Renderer) {
		r.maxInput = n
	}
}

// WithCodeRenderer replaces the Chroma-based code block renderer.
func WithCodeRenderer(code CodeRenderer) Option {
	return func(r *Renderer) {
		r.html = render.New(code)
	}
}

// New creates a Renderer using CommentOptions and DefaultMaxInputSize.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		opts:     CommentOptions(),
		maxInput: DefaultMaxInputSize,
		html:     render.New(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Options returns the extensions the renderer was configured with.
func (r *Renderer) Options() Options {
	return r.opts
}

// MaxInputSize returns the input limit in bytes, or 0 when unlimited.
func (r *Renderer) MaxInputSize() int {
	return max(r.maxInput, 0)
}

// Render converts text to a sanitized fragment.
// The only failures are a done context and an input larger than the
// configured limit, both reported before parsing starts.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, text string) (frag SanitizedFragment, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			frag, err = SanitizedFragment{}, fmt.Errorf("internal error: %v", rec)
		}
	}()

	if ctx.Err() != nil {
		return SanitizedFragment{}, ctx.Err()
	}
	if r.maxInput > 0 && len(text) > r.maxInput {
		return SanitizedFragment{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(text), r.maxInput)
	}
	return r.render(text), nil
}

func (r *Renderer) render(text string) SanitizedFragment {
	if text == "" {
		return SanitizedFragment{}
	}
	doc := markdown.ParseBlocks(text, r.opts.extensions())
	return sanitize.Sanitize(r.html.Render(doc))
}

// RenderMarkdown converts text to a sanitized fragment using opts and the
// default code renderer. It never fails; empty input yields an empty
// fragment.
func RenderMarkdown(text string, opts Options) SanitizedFragment {
	r := Renderer{opts: opts, html: defaultHTML}
	return r.render(text)
}

var defaultHTML = render.New(nil)
