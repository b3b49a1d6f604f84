// Package markdown turns stored chunks into display markdown and HTML.
//
// Rendering is recomputed on every read from the chunk's raw fields, so the
// rules here can evolve without a data migration. Fence computes collision-
// free code fence delimiters; Render maps a command plus its fields to
// markdown; Renderer converts that markdown to HTML via goldmark with raw
// HTML dropped.
package markdown
