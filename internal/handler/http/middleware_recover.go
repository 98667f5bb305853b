package http

import (
	"net/http"
	"runtime/debug"
)

// withRecover converts a panic in downstream into a JSON 500 without any
// internal detail. http.ErrAbortHandler is re-raised so that net/http can
// abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.requestLogger(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			writeErrorCode(w, r, http.StatusInternalServerError, codeInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
