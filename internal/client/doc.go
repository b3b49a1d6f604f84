// Package client posts authoring commands to a remote showboat server.
//
// The remote URL is the receive endpoint itself, conventionally taken from
// the SHOWBOAT_URL environment variable, and may embed a token query
// parameter. Writes are fire-and-forget: the server acknowledges success
// without returning the assigned chunk id, and the client never retries.
package client
