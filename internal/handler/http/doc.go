// Package http implements the REST transport of the rewards backend.
// It owns the chi router, the middleware chain (tracing, access logging,
// metrics, CORS, compression, bearer authentication) and the translation of
// service errors into the {ok, ...} JSON envelope.
package http
