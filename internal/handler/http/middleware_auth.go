package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
)

// publicRoutes are served without an identity. Matching is on the exact path.
var publicRoutes = map[string]struct{}{
	"/health":       {},
	"/health/ready": {},
	"/auth/signup":  {},
	"/auth/login":   {},
}

func isPublicRoute(path string) bool {
	_, ok := publicRoutes[path]
	return ok
}

// withIdentity extracts a bearer token from the "Authorization" header and
// validates it via [service.TokenService.Validate]. On success the identity
// is bound into the request context under [utils.IdentityCtxKey].
//
// A missing header, another scheme or an invalid token never rejects the
// request: it continues anonymously and [Handler.withAuthorization] decides.
// The token itself is never logged.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.TokenService.Validate(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		log.Debug().Int64("user_id", identity.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// withAuthorization rejects requests for non-public routes that carry no
// identity with a JSON 401; downstream is not invoked.
func (h *Handler) withAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicRoute(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			writeErrorCode(w, r, http.StatusUnauthorized, codeUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
