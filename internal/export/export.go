package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"showboat/internal/chunk"
	"showboat/internal/markdown"
)

// Format selects the export output type.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat converts a string into a known Format.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatMarkdown, "md":
		return FormatMarkdown, true
	case FormatHTML:
		return FormatHTML, true
	default:
		return "", false
	}
}

// Exporter renders whole documents from a chunk store.
type Exporter struct {
	store    *chunk.Store
	renderer *markdown.Renderer
}

// New constructs an Exporter.
func New(store *chunk.Store) *Exporter {
	return &Exporter{store: store, renderer: markdown.NewRenderer()}
}

// Document renders the full document in the requested format. An unknown
// document yields an error rather than an empty artifact.
func (e *Exporter) Document(ctx context.Context, documentID string, format Format) (string, error) {
	chunks, err := e.store.List(ctx, documentID, 0)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", fmt.Errorf("document %q has no chunks", documentID)
	}

	switch format {
	case FormatMarkdown:
		return joinMarkdown(chunks), nil
	case FormatHTML:
		return e.renderHTML(chunks)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func joinMarkdown(chunks []*chunk.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if rendered, ok := markdown.RenderChunk(c); ok {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (e *Exporter) renderHTML(chunks []*chunk.Chunk) (string, error) {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	for _, c := range chunks {
		rendered, ok := markdown.RenderChunk(c)
		if !ok {
			continue
		}
		html, err := e.renderer.Render(rendered)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", c.ID, err)
		}
		if c.HasImage() {
			html = spliceImage(html, c.Image)
		}
		out.WriteString(html)
	}
	out.WriteString("</body>\n</html>\n")
	return out.String(), nil
}

// spliceImage inlines the binary payload into the empty image placeholder
// the renderer emits for an alt-tagged image chunk.
func spliceImage(html string, image []byte) string {
	dataURI := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(image),
		base64.StdEncoding.EncodeToString(image),
	)
	return strings.Replace(html, `src=""`, `src="`+dataURI+`"`, 1)
}
