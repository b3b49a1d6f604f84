package api

import (
	"encoding/base64"
	"fmt"
	"time"

	"showboat/internal/chunk"
	"showboat/internal/markdown"
)

// FromChunk converts a stored chunk into its transport form, recomputing the
// rendered markdown (and HTML when renderer is non-nil) from the raw fields.
// Pop chunks are passed through with no rendering.
func FromChunk(c *chunk.Chunk, renderer *markdown.Renderer) (Chunk, error) {
	out := Chunk{
		ID:         c.ID,
		DocumentID: c.DocumentID,
		Command:    string(c.Command),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		Title:      c.Title,
		Markdown:   c.Fields.Markdown,
		Language:   c.Language,
		Input:      c.Input,
		Output:     c.Output,
		Filename:   c.Filename,
		Alt:        c.Alt,
	}

	if rendered, ok := markdown.RenderChunk(c); ok {
		out.RenderedMarkdown = rendered
		if renderer != nil {
			html, err := renderer.Render(rendered)
			if err != nil {
				return Chunk{}, fmt.Errorf("chunk %d: %w", c.ID, err)
			}
			out.RenderedHTML = html
		}
	}

	if c.HasImage() {
		out.Image = base64.StdEncoding.EncodeToString(c.Image)
	}
	return out, nil
}

// FromChunks converts a listing, preserving order. The result is never nil
// so an empty document serializes as an empty array.
func FromChunks(chunks []*chunk.Chunk, renderer *markdown.Renderer) ([]Chunk, error) {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		converted, err := FromChunk(c, renderer)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// FromSummary converts a store summary row.
func FromSummary(s chunk.Summary) DocumentSummary {
	return DocumentSummary{
		DocumentID: s.DocumentID,
		ChunkCount: s.ChunkCount,
		FirstChunk: s.FirstChunk.UTC().Format(time.RFC3339Nano),
		LastChunk:  s.LastChunk.UTC().Format(time.RFC3339Nano),
	}
}

// FromHealth converts store diagnostics for the health endpoint.
func FromHealth(h chunk.DatabaseHealth) HealthResponse {
	return HealthResponse{
		OK:            h.DatabaseReadable && h.TableExists && h.IntegrityCheck,
		TotalChunks:   h.TotalChunks,
		DocumentCount: h.DocumentCount,
		Error:         h.Error,
	}
}
