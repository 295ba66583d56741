package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/rewards-backend/internal/logger"
)

// withRecover turns a handler panic into a 500 error envelope. When the
// handler already started the response only the log line is written.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			if !rw.wroteHeader {
				writeError(rw, r, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
