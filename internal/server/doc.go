// Package server exposes the showboat HTTP surface.
//
// Routes: POST /receive ingests authoring commands (optionally gated by a
// shared token supplied as a query parameter); GET /document/{id}.json
// serves full or incremental chunk listings; GET /document/{id} serves the
// polling document view; GET / lists known documents; GET /healthz reports
// store diagnostics.
//
// The write-path token and the read-path authorizer are independent gates:
// the token guards /receive only, the authorizer guards the browse paths
// and defaults to allow-all.
package server
