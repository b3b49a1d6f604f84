package testsupport

import (
	"context"
	"testing"
	"time"

	"showboat/internal/chunk"
	"showboat/internal/config"
)

// MustOpenStore opens a chunk.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *chunk.Store {
	t.Helper()

	store, err := chunk.Open(cfg)
	if err != nil {
		t.Fatalf("chunk.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AppendChunk appends one chunk for tests, stamped with the current time.
func AppendChunk(t testing.TB, store *chunk.Store, documentID string, command chunk.Command, fields chunk.Fields) *chunk.Chunk {
	t.Helper()

	appended, err := store.Append(context.Background(), documentID, command, fields, time.Now().UTC())
	if err != nil {
		t.Fatalf("store.Append: %v", err)
	}
	return appended
}
