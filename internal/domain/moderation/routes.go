package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns user-facing moderation routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	r.Post("/reports", h.CreateReport)
	r.Get("/reports/mine", h.ListMyReports)

	return r
}

// AdminRoutes returns admin-only moderation queue routes
func (h *Handler) AdminRoutes(adminAuthMiddleware, permissionMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(adminAuthMiddleware)
	r.Use(permissionMiddleware)

	r.Get("/", h.ListReports)
	r.Get("/{id}", h.GetReport)
	r.Patch("/{id}/status", h.UpdateStatus)

	return r
}
