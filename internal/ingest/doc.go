// Package ingest is the single write entry point for chunk persistence.
//
// The Receiver validates an inbound command, extracts only the fields that
// command uses, stamps the receipt time, and appends exactly one chunk to
// the store. Validation failures are client errors and write nothing;
// storage failures propagate unchanged because silently dropping a chunk
// would corrupt the document's replay history.
package ingest
