// Package server runs the HTTP listener of the rewards backend.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
