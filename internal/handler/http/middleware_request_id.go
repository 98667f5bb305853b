package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feed/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID propagates the caller's X-Request-ID or generates a UUIDv7,
// binds it into the request context and a child logger, and echoes it in the
// response header.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := h.requestIDs.Resolve(r.Header.Get(requestIDHeader))

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx := utils.WithRequestID(r.Context(), requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
