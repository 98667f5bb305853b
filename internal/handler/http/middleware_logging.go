package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-feed/internal/utils"
)

// withLogging writes one access log line per request after downstream has
// finished. The line is written from a deferred call, so it is emitted even
// if a panic escapes. request_id comes from the request logger. Headers, and
// therefore the token, are never logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLogger(r)

		start := time.Now()
		path := r.URL.Path
		method := r.Method
		_, authenticated := utils.GetIdentityFromContext(r.Context())

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			status := lw.status
			if status == 0 {
				status = http.StatusOK
			}

			log.Info().
				Str("method", method).
				Str("path", path).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Bool("authenticated", authenticated).
				Msg("request served")
		}()

		next.ServeHTTP(lw, r)
	})
}
