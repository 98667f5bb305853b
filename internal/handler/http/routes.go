package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is significant: the request id is
// bound first so that every later stage logs it; the access log wraps
// recovery so that panicking requests are logged exactly once with their 500.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRequestID,
		h.withIdentity,
		h.withLogging,
		h.withRecover,
		h.withAuthorization,
		middleware.Compress(5, "application/json"),
	)

	// public routes, see publicRoutes
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/health/ready", h.ready)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// routes requiring an identity
	router.Group(func(r chi.Router) {
		r.Get("/auth/me", h.me)
		r.Post("/posts", h.createPost)
		r.Get("/timeline", h.timeline)
		r.Get("/users/{userID}/posts", h.userPosts)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
