// Package export replays a stored document into a single artifact.
//
// The live view renders chunks incrementally; export produces the same
// content as one markdown or HTML document. Pop markers are skipped the
// same way the view skips them, and image payloads are inlined as data URIs
// in HTML output.
package export
