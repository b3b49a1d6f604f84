// Package chunk persists showboat document chunks in SQLite.
//
// A chunk is one immutable record per received authoring command. The store
// is append-only: rows are never updated or deleted, and the autoincrement
// id doubles as the polling cursor. A pop command is stored as a marker
// chunk like any other; replaying a document's chunks in id order always
// reconstructs its full history.
//
// Summaries aggregate per-document activity over content-bearing chunks
// only, so a document consisting solely of pop markers does not appear in
// the index.
package chunk
