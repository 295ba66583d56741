package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout bounds the request context. Handlers observe the deadline
// through their database calls; if nothing was written by then the client
// gets a 504 error envelope.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(rw, r, ErrRequestTimeout)
			}
		})
	}
}
