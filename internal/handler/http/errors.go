// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no bearer token. It maps to 401.
	ErrEmptyAuthorizationHeader = errors.New("missing bearer token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>". It maps to 401.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken is returned when a bearer token is present but fails
	// signature, issuer or expiry checks. It maps to 403.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrRequestBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrInvalidIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidIDParam = errors.New("invalid id parameter")

	// ErrNotFound is written for unknown routes.
	ErrNotFound = errors.New("not found")

	// ErrMethodNotAllowed is written when the route exists but not for the
	// requested method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidLimitParam is returned when ?limit= is not an integer.
	ErrInvalidLimitParam = errors.New("invalid limit parameter")

	// ErrRequestTimeout is written when the request deadline passes before
	// the handler responds. It maps to 504.
	ErrRequestTimeout = errors.New("request timed out")
)
