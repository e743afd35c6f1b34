package markup

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts episode description markup to HTML.
//
// Podcast feeds routinely carry descriptions written as plain text or
// light Markdown, with bare URLs and e-mail addresses rather than proper
// links. Renderer handles both: Markdown constructs become HTML, and bare
// URLs/addresses are auto-converted into anchors.
//
// Example usage:
//
//	r := markup.NewRenderer()
//	html, err := r.Render("Show notes at https://example.com/notes")
//	// html contains <a href="https://example.com/notes">...</a>
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with autolinking enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
		),
	}
}

// Render converts description markup to HTML.
//
// Returns an error if the Markdown renderer fails; for feed descriptions
// this effectively never happens, but the error is propagated rather than
// swallowed so a render fault aborts episode extraction.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
