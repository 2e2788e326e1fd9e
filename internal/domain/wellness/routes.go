package wellness

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns wellness routes. Everything is owner-scoped, so all
// routes require authentication.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/mood", h.RecordMood)
	r.Get("/mood", h.MoodHistory)
	r.Post("/stress", h.RecordStress)
	r.Get("/stress", h.StressHistory)
	r.Post("/sleep", h.RecordSleep)
	r.Post("/social", h.RecordSocial)

	r.Get("/insights", h.GetInsights)

	return r
}
