// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// feedShapedRouter mirrors the route shapes of Init without the middleware
// chain, so no services are needed.
func feedShapedRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(r.Method + " " + r.URL.Path))
		}
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Get("/health", ok(http.StatusOK))
		r.Post("/auth/login", ok(http.StatusOK))
	})
	router.Group(func(r chi.Router) {
		r.Post("/posts", ok(http.StatusCreated))
		r.Get("/timeline", ok(http.StatusOK))
		r.Get("/users/{userID}/posts", ok(http.StatusOK))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Таблица: зарегистрированные методы проходят, остальные дают 404 ----

func TestCheckHTTPMethod(t *testing.T) {
	router := feedShapedRouter()

	tests := []struct {
		method   string
		path     string
		want     int
		wantBody string
	}{
		{http.MethodGet, "/health", http.StatusOK, "GET /health"},
		{http.MethodPost, "/auth/login", http.StatusOK, "POST /auth/login"},
		{http.MethodPost, "/posts", http.StatusCreated, "POST /posts"},
		{http.MethodGet, "/timeline", http.StatusOK, "GET /timeline"},
		{http.MethodGet, "/users/7/posts", http.StatusOK, "GET /users/7/posts"},

		{http.MethodGet, "/posts", http.StatusNotFound, `{"error":"not_found"}`},
		{http.MethodDelete, "/posts", http.StatusNotFound, `{"error":"not_found"}`},
		{http.MethodPost, "/timeline", http.StatusNotFound, `{"error":"not_found"}`},
		{http.MethodGet, "/auth/login", http.StatusNotFound, `{"error":"not_found"}`},
		{http.MethodPut, "/health", http.StatusNotFound, `{"error":"not_found"}`},
		// parameterised patterns never match a concrete path
		{http.MethodPost, "/users/7/posts", http.StatusNotFound, `{"error":"not_found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.want == http.StatusNotFound {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := feedShapedRouter()
	const n = 50
	codes := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/timeline", nil))
			codes <- rr.Code
		}(i)
	}

	counts := map[int]int{}
	for i := 0; i < n; i++ {
		counts[<-codes]++
	}
	assert.Equal(t, map[int]int{http.StatusOK: n / 2, http.StatusNotFound: n / 2}, counts)
}
