package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts chunk markdown into HTML. Raw HTML embedded in the
// markdown is dropped rather than passed through, so untrusted chunk content
// cannot inject markup into the document view. The renderer is stateless and
// safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs an HTML renderer with GFM extensions enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts markdown source to HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
