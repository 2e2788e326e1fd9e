package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns forum post routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public feed
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	// Authenticated actions
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
