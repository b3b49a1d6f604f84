// Package config loads, normalizes, and validates showboat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SHOWBOAT_URL. The Config type centralizes every knob the server and CLI
// need; it is constructed once at startup and passed into components
// explicitly rather than living as ambient global state.
package config
