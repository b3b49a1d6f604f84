package api_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"showboat/internal/api"
	"showboat/internal/chunk"
	"showboat/internal/markdown"
)

func TestFromChunkRendersNote(t *testing.T) {
	stored := &chunk.Chunk{
		ID:         7,
		DocumentID: "doc-1",
		Command:    chunk.CommandNote,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Fields:     chunk.Fields{Markdown: "Some **bold** text"},
	}

	converted, err := api.FromChunk(stored, markdown.NewRenderer())
	if err != nil {
		t.Fatalf("FromChunk failed: %v", err)
	}
	if converted.ID != 7 || converted.DocumentID != "doc-1" || converted.Command != "note" {
		t.Fatalf("unexpected identity fields: %#v", converted)
	}
	if converted.CreatedAt != "2026-03-01T10:00:00Z" {
		t.Fatalf("unexpected timestamp: %q", converted.CreatedAt)
	}
	if converted.RenderedMarkdown != "Some **bold** text" {
		t.Fatalf("unexpected rendered markdown: %q", converted.RenderedMarkdown)
	}
	if !strings.Contains(converted.RenderedHTML, "<strong>bold</strong>") {
		t.Fatalf("unexpected rendered HTML: %q", converted.RenderedHTML)
	}
}

func TestFromChunkPopHasNoRendering(t *testing.T) {
	stored := &chunk.Chunk{
		ID:         3,
		DocumentID: "doc-1",
		Command:    chunk.CommandPop,
		CreatedAt:  time.Now().UTC(),
	}

	converted, err := api.FromChunk(stored, markdown.NewRenderer())
	if err != nil {
		t.Fatalf("FromChunk failed: %v", err)
	}
	if converted.RenderedMarkdown != "" || converted.RenderedHTML != "" {
		t.Fatalf("pop must not render: %#v", converted)
	}

	encoded, err := json.Marshal(converted)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(encoded), "rendered_markdown") {
		t.Fatalf("rendered fields must be omitted for pop: %s", encoded)
	}
}

func TestFromChunkEncodesImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x01, 0x02}
	stored := &chunk.Chunk{
		ID:         4,
		DocumentID: "doc-1",
		Command:    chunk.CommandImage,
		CreatedAt:  time.Now().UTC(),
		Fields: chunk.Fields{
			Filename: "chart.png",
			Alt:      "a chart",
			Image:    payload,
		},
	}

	converted, err := api.FromChunk(stored, markdown.NewRenderer())
	if err != nil {
		t.Fatalf("FromChunk failed: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(converted.Image)
	if err != nil {
		t.Fatalf("image is not valid base64: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatalf("image payload did not round-trip")
	}
	if !strings.Contains(converted.RenderedMarkdown, "chart.png") {
		t.Fatalf("unexpected rendered markdown: %q", converted.RenderedMarkdown)
	}
}

func TestFromChunksNeverNil(t *testing.T) {
	converted, err := api.FromChunks(nil, nil)
	if err != nil {
		t.Fatalf("FromChunks failed: %v", err)
	}
	if converted == nil {
		t.Fatal("expected empty slice, not nil")
	}

	encoded, err := json.Marshal(api.DocumentResponse{Chunks: converted})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(encoded) != `{"chunks":[]}` {
		t.Fatalf("empty document must serialize as an empty array: %s", encoded)
	}
}

func TestFromHealth(t *testing.T) {
	healthy := api.FromHealth(chunk.DatabaseHealth{
		DatabaseReadable: true,
		TableExists:      true,
		IntegrityCheck:   true,
		TotalChunks:      10,
		DocumentCount:    2,
	})
	if !healthy.OK || healthy.TotalChunks != 10 || healthy.DocumentCount != 2 {
		t.Fatalf("unexpected health response: %#v", healthy)
	}

	broken := api.FromHealth(chunk.DatabaseHealth{
		DatabaseReadable: true,
		TableExists:      true,
		IntegrityCheck:   false,
		Error:            "corrupt page",
	})
	if broken.OK {
		t.Fatal("failed integrity check must not report ok")
	}
	if broken.Error != "corrupt page" {
		t.Fatalf("unexpected error field: %q", broken.Error)
	}
}
