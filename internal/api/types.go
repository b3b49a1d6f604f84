package api

// Chunk is the transport representation of one stored chunk. Raw command
// fields are present only when the command defines them; rendered fields are
// absent for pop chunks.
type Chunk struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"document_id"`
	Command    string `json:"command"`
	CreatedAt  string `json:"created_at"`

	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown,omitempty"`
	Language string `json:"language,omitempty"`
	Input    string `json:"input,omitempty"`
	Output   string `json:"output,omitempty"`
	Filename string `json:"filename,omitempty"`
	Alt      string `json:"alt,omitempty"`

	RenderedMarkdown string `json:"rendered_markdown,omitempty"`
	RenderedHTML     string `json:"rendered_html,omitempty"`
	// Image is the base64 encoding of the stored binary payload.
	Image string `json:"image,omitempty"`
}

// DocumentResponse wraps a full or incremental chunk listing.
type DocumentResponse struct {
	Chunks []Chunk `json:"chunks"`
}

// DocumentSummary is one row of the document index.
type DocumentSummary struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
	FirstChunk string `json:"first_chunk"`
	LastChunk  string `json:"last_chunk"`
}

// HealthResponse reports store diagnostics for the liveness endpoint.
type HealthResponse struct {
	OK            bool   `json:"ok"`
	TotalChunks   int    `json:"total_chunks"`
	DocumentCount int    `json:"document_count"`
	Error         string `json:"error,omitempty"`
}
