package handler

import (
	"net/http"

	"github.com/foxypassword/foxypassword-go/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the API routes.
func NewRouter(gen *GeneratorHandler, limiter *middleware.IPRateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Post("/api/v1/evaluate", gen.HandleEvaluate)
	})

	return r
}
